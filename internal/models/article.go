package models

// Article is a feed entry as served to the web client
type Article struct {
	ID              string   `json:"id"`
	Title           string   `json:"titre"`
	Author          string   `json:"auteur"`
	PublicationDate *string  `json:"date_publication"` // YYYY-MM-DD
	Link            string   `json:"lien"`
	ImageURL        *string  `json:"image_url"`
	AnatomicalTags  []string `json:"tags_anatomique"`
	ContentTags     []string `json:"tags_contenu"`
}

// ArticlesResponse is one page of the feed
type ArticlesResponse struct {
	Articles   []Article `json:"articles"`
	HasMore    bool      `json:"has_more"`
	NextCursor *string   `json:"next_cursor"`
}
