package dto

type CheckInInput struct {
	Employee string
	Status   string
	Note     string
	Evidence string
}

type CleaningInput struct {
	Officer   string
	Area      string
	Condition string
	Evidence  string
}
