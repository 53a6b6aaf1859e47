package models

// Note is a songwriting draft. The notebook keeps one working note under
// a well-known id plus a saved-note list.
type Note struct {
	ID           string `bson:"id" json:"id"`
	Title        string `bson:"title" json:"title"`
	Content      string `bson:"content" json:"content"`
	LastModified int64  `bson:"lastModified" json:"lastModified"` // unix millis
}

// Recording is stored audio plus its metadata record.
type Recording struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	PublicID    string `bson:"publicId" json:"publicId"`
	URL         string `bson:"url" json:"url"`
	ContentType string `bson:"contentType" json:"contentType"`
	Size        int64  `bson:"size" json:"size"`
	UploadedAt  int64  `bson:"uploadedAt" json:"uploadedAt"`
}

// Profile holds the songwriter's profile page data.
type Profile struct {
	DisplayName string `bson:"displayName" json:"displayName"`
	Bio         string `bson:"bio,omitempty" json:"bio,omitempty"`
	Genres      string `bson:"genres,omitempty" json:"genres,omitempty"`
	Goals       string `bson:"goals,omitempty" json:"goals,omitempty"`
	UpdatedAt   int64  `bson:"updatedAt" json:"updatedAt"`
}

// NotebookStats is the headline counters for the profile page.
type NotebookStats struct {
	Songs      int `json:"songs"`
	Recordings int `json:"recordings"`
	Chats      int `json:"chats"`
}
