package models

// CategoryFeatured is the gallery category for front-page photos, in
// addition to the per-service categories.
const CategoryFeatured = "featured"

// Photo is a gallery image's metadata record; the image itself lives in
// object storage under PublicID.
type Photo struct {
	ID          string `bson:"id" json:"id"`
	PublicID    string `bson:"publicId" json:"publicId"`
	URL         string `bson:"url" json:"url"`
	Category    string `bson:"category" json:"category"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Size        int64  `bson:"size,omitempty" json:"size,omitempty"`
	UploadedAt  int64  `bson:"uploadedAt" json:"uploadedAt"`
}

// Gallery is a photo listing response.
type Gallery struct {
	Photos   []Photo `json:"photos"`
	Total    int     `json:"total"`
	Category string  `json:"category,omitempty"`
}
