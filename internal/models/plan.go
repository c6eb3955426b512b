package models

// PlanItem is a single slot in the current day plan. The id is stable for the
// lifetime of the plan; a swap replaces Kind and RefID only.
type PlanItem struct {
	ID        string   `json:"id"`
	Kind      ItemKind `json:"type"`
	RefID     string   `json:"refId"`
	Completed bool     `json:"completed"`
}

// Replacement names the fields a swap is allowed to change.
type Replacement struct {
	Kind  ItemKind `json:"type"`
	RefID string   `json:"refId"`
}
