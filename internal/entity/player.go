package entity

type Player struct {
	ID   string `json:"id"`
	Mark Mark   `json:"mark"`
}
