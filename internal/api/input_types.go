package api

// Emails are matched byte for byte downstream, so inputs are deliberately
// not trimmed or case-folded here.
type credentialsInput struct {
	Name   string `json:"name" form:"name"`
	Email  string `json:"email" form:"email"`
	Secret string `json:"secret" form:"secret"`
}

type moodEntryInput struct {
	Mood string `json:"mood" form:"mood"`
	Note string `json:"note" form:"note"`
}

type reflectionInput struct {
	Content  string `json:"content" form:"content"`
	HasAudio bool   `json:"has_audio" form:"has_audio"`
}
