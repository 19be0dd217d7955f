package settings

import (
	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

type CompanySettingsResponse struct {
	ID             string   `json:"id"`
	CompanyName    string   `json:"company_name"`
	WorkDays       []string `json:"work_days"`
	WorkStartTime  string   `json:"work_start_time"`
	WorkEndTime    string   `json:"work_end_time"`
	EnableOvertime bool     `json:"enable_overtime"`
}

type UpdateCompanySettingsRequest struct {
	CompanyName    *string   `json:"company_name"`
	WorkDays       *[]string `json:"work_days"`
	WorkStartTime  *string   `json:"work_start_time"`
	WorkEndTime    *string   `json:"work_end_time"`
	EnableOvertime *bool     `json:"enable_overtime"`
}

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (r *UpdateCompanySettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName != nil && validator.IsEmpty(*r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name must not be empty",
		})
	}

	if r.WorkDays != nil {
		for _, d := range *r.WorkDays {
			if !validator.IsInSlice(d, weekdayNames) {
				errs = append(errs, validator.ValidationError{
					Field:   "work_days",
					Message: "unknown weekday name: " + d,
				})
				break
			}
		}
	}

	if r.WorkStartTime != nil && !validator.IsValidTimeOfDay(*r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:MM format",
		})
	}

	if r.WorkEndTime != nil && !validator.IsValidTimeOfDay(*r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
