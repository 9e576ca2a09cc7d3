package dto

type RateRequest struct {
	Rating int `json:"rating"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
