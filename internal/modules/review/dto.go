package review

type CreateReviewRequest struct {
	RoomID  *int64 `json:"room_id"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}
