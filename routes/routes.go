// File: routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"atelier/handlers"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Conversation *handlers.ConversationHandler
	Scheduling   *handlers.SchedulingHandler
	Gallery      *handlers.GalleryHandler
	Contact      *handlers.ContactHandler
	Notebook     *handlers.NotebookHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// Studio booking conversation.
		api.POST("/chat/session", h.Conversation.StartSession)
		api.POST("/chat/message", h.Conversation.SendMessage)
		api.GET("/chat/session/:id", h.Conversation.GetSession)
		api.POST("/chat/confirm", h.Conversation.ConfirmBooking)
		api.POST("/chat/cancel", h.Conversation.CancelSession)

		// Scheduling and catalogue.
		api.GET("/availability", h.Scheduling.GetAvailability)
		api.POST("/schedule", h.Scheduling.ScheduleBooking)
		api.GET("/services", h.Scheduling.ListServices)

		// Portfolio.
		api.POST("/contact", h.Contact.HandleInquiry)
		api.GET("/photos", h.Gallery.ListPhotos)
		api.GET("/photos/:category", h.Gallery.ListPhotosByCategory)
		api.POST("/photos/upload", h.Gallery.UploadPhoto)

		// Songwriting notebook.
		nb := api.Group("/notebook")
		{
			nb.POST("/chat", h.Notebook.Chat)
			nb.GET("/chat/history", h.Notebook.ChatHistory)
			nb.GET("/note/current", h.Notebook.CurrentNote)
			nb.POST("/note/save", h.Notebook.SaveNote)
			nb.GET("/notes", h.Notebook.ListNotes)
			nb.POST("/recordings/upload", h.Notebook.UploadRecording)
			nb.GET("/recordings", h.Notebook.ListRecordings)
			nb.GET("/recordings/:id/play", h.Notebook.PlayRecording)
			nb.DELETE("/recordings/:id", h.Notebook.DeleteRecording)
			nb.GET("/profile", h.Notebook.GetProfile)
			nb.POST("/profile", h.Notebook.SaveProfile)
			nb.GET("/stats", h.Notebook.Stats)
		}
	}
}
