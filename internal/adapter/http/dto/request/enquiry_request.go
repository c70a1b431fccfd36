package request

// EnquiryRequest is a free-form contact-form message.
type EnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required"`
	Company string `json:"company"`
	Message string `json:"message" binding:"required"`
}
