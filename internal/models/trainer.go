package models

type Trainer struct {
	TrainerID      int64  `json:"trainer_id"`
	UserID         int64  `json:"user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Certification  string `json:"certification"`
	Specialization string `json:"specialization"`
}
