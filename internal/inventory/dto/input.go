package dto

type AdjustStockInput struct {
	Name string
	// Delta is negative for consumption, positive for restock.
	Delta int
}

type AddItemInput struct {
	Name     string
	Category string
	Stock    int
	Unit     string
	MinStock int
}
