package dto

type BalanceResponseDTO struct {
	Current      int64   `json:"current" example:"75000"`
	Credited     int64   `json:"credited" example:"10000"`
	Spent        int64   `json:"spent" example:"4500"`
	MinTopUp     int64   `json:"min_top_up" example:"1000"`
	TopUpPresets []int64 `json:"top_up_presets" example:"10000,25000,50000,100000"`
}

type CreditRequestDTO struct {
	Amount     int64  `json:"amount" validate:"required,gt=0,max=100000000" example:"10000"`
	CardNumber string `json:"card_number" validate:"required,luhn" example:"4242 4242 4242 4242"`
	Expiry     string `json:"expiry" validate:"required,expiry" example:"12/27"`
	CVV        string `json:"cvv" validate:"required,cvv" example:"123"`
	CardHolder string `json:"card_holder" validate:"required" example:"ANA GOMEZ"`
}
