package dto

// ImageRequest is implemented by every POST body the image routes accept.
type ImageRequest interface {
	Fields() (imageURL, preferences string)
}

type StyleRequest struct {
	Preferences string `json:"preferences" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required"`
}

func (r StyleRequest) Fields() (string, string) {
	return r.ImageURL, r.Preferences
}

type NatureRequest struct {
	ImageURL string `json:"image_url" validate:"required"`
}

func (r NatureRequest) Fields() (string, string) {
	return r.ImageURL, ""
}
