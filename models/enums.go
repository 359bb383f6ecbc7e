package models

// Gender of a dog.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func GenderValues() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// DogStatus is the dog's current service status.
type DogStatus string

const (
	StatusInTraining DogStatus = "IN_TRAINING"
	StatusInService  DogStatus = "IN_SERVICE"
	StatusRetired    DogStatus = "RETIRED"
	StatusLeft       DogStatus = "LEFT"
)

func DogStatusValues() []DogStatus {
	return []DogStatus{StatusInTraining, StatusInService, StatusRetired, StatusLeft}
}

// LeavingReason records why a dog left the force.
type LeavingReason string

const (
	LeavingTransferred     LeavingReason = "TRANSFERRED"
	LeavingRetiredPutDown  LeavingReason = "RETIRED_PUT_DOWN"
	LeavingKIA             LeavingReason = "KIA"
	LeavingRejected        LeavingReason = "REJECTED"
	LeavingRetiredReHoused LeavingReason = "RETIRED_RE_HOUSED"
	LeavingDied            LeavingReason = "DIED"
)

func LeavingReasonValues() []LeavingReason {
	return []LeavingReason{
		LeavingTransferred,
		LeavingRetiredPutDown,
		LeavingKIA,
		LeavingRejected,
		LeavingRetiredReHoused,
		LeavingDied,
	}
}
