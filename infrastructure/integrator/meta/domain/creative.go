package metadomain

// Creative é o criativo como devolvido pela API do Meta.
type Creative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	CallToAction string `json:"call_to_action_type"`
	ThumbnailURL string `json:"thumbnail_url"`
	ObjectType   string `json:"object_type"`
	Status       string `json:"status"`
}
