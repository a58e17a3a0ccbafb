package dto

type AddPlanInput struct {
	Date      string
	Caption   string
	Platforms []string
	Status    string
}
