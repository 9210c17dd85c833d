package dto

// CertificationForm represents an add-certification submission. Dates arrive
// as form text and are parsed as calendar dates by the service.
type CertificationForm struct {
	Name         string `form:"name" json:"name" binding:"required"`
	Issuer       string `form:"issuer" json:"issuer" binding:"required"`
	IssueDate    string `form:"issue_date" json:"issueDate" binding:"required"`
	ExpiryDate   string `form:"expiry_date" json:"expiryDate"`
	CredentialID string `form:"credential_id" json:"credentialId"`
}
