package request

// NdaRequest records one acceptance of the mutual NDA. The source address is
// taken from the connection, never from the payload.
type NdaRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Company         string `json:"company" binding:"required"`
	AcceptedVersion string `json:"accepted_version"`
}
