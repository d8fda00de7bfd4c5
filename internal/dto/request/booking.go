package request

type BookClassRequest struct {
	ClassID string `json:"class_id" validate:"required,uuid4"`
}

type BookClassForRequest struct {
	ClassID       string `json:"class_id" validate:"required,uuid4"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

type BookFacilityRequest struct {
	FacilityID string `json:"facility_id" validate:"required,uuid4"`
	Activity   string `json:"activity" validate:"required,min=1"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
}
