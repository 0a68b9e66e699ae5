package models

// BodyRecordInput is the payload of POST /api/user/body-data.
type BodyRecordInput struct {
	Weight  float64  `json:"weight" validate:"required,gt=0"` // kg
	Height  float64  `json:"height" validate:"required,gt=0"` // cm
	Chest   *float64 `json:"chest"`
	Waist   *float64 `json:"waist"`
	Hip     *float64 `json:"hip"`
	BodyFat *float64 `json:"body_fat"`
	Gender  Gender   `json:"gender" validate:"required,oneof=male female"`
	Age     int      `json:"age" validate:"required,gt=0"`
}

// BodyRecord is a stored measurement. Field order is the on-disk key order.
type BodyRecord struct {
	ID      int      `json:"id"`
	Date    string   `json:"date"` // YYYY-MM-DD
	Time    string   `json:"time"` // HH:MM
	Weight  float64  `json:"weight"`
	Height  float64  `json:"height"`
	Chest   *float64 `json:"chest"`
	Waist   *float64 `json:"waist"`
	Hip     *float64 `json:"hip"`
	BodyFat *float64 `json:"body_fat"`
	Gender  Gender   `json:"gender"`
	Age     int      `json:"age"`
	BMI     float64  `json:"bmi"`
	WHR     *float64 `json:"whr"`
}

type HistoryResponse struct {
	Records []BodyRecord `json:"records"`
}
