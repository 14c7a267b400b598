package domain

// Moneda is the currency an amount is denominated in.
// Serialized as the enum name on the wire, never a numeric code.
type Moneda string

const (
	MonedaPEN Moneda = "PEN"
	MonedaUSD Moneda = "USD"
)

// TasaTipo is how an input interest rate is expressed.
type TasaTipo string

const (
	TasaEfectiva TasaTipo = "EFECTIVA"
	TasaNominal  TasaTipo = "NOMINAL"
)

// GraciaTipo is the grace-period policy applied to a loan.
type GraciaTipo string

const (
	GraciaNinguna GraciaTipo = "NINGUNA"
	GraciaTotal   GraciaTipo = "TOTAL"
	GraciaParcial GraciaTipo = "PARCIAL"
)
