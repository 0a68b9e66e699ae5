/*
Package models holds the request and response payloads shared by the
planner, the body-record store and the HTTP handlers. The types carry no
behaviour beyond JSON and validation tags.
*/
package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// BodyProfile is the physical snapshot sent along with every planning request.
// Optional measurements are pointers so that "not measured" is distinguishable
// from a real value.
type BodyProfile struct {
	Gender Gender  `json:"gender" validate:"required,oneof=male female"`
	Age    int     `json:"age" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"` // cm
	Weight float64 `json:"weight" validate:"required,gt=0"` // kg

	BMI     *float64 `json:"bmi,omitempty"`
	BodyFat *float64 `json:"body_fat,omitempty"` // %
	Waist   *float64 `json:"waist,omitempty"`
	Hip     *float64 `json:"hip,omitempty"`

	// WHR is accepted as supplied; it is not checked against Waist/Hip.
	WHR *float64 `json:"whr,omitempty"`

	ActivityLevel ActivityLevel `json:"activity_level,omitempty" validate:"omitempty,oneof=sedentary light moderate active athlete"`
}
