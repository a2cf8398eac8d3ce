package domain

type ScenarioKind string

const (
	ScenarioBaseline             ScenarioKind = "baseline"
	ScenarioContractRenewal      ScenarioKind = "contract_renewal"
	ScenarioNewContractWin       ScenarioKind = "new_contract_win"
	ScenarioNetworkDensification ScenarioKind = "network_densification"
	ScenarioBroadcastDecline     ScenarioKind = "broadcast_decline"
	ScenarioContractLoss         ScenarioKind = "contract_loss"
	ScenarioEfficiencyProgram    ScenarioKind = "efficiency_program"
)

type ScenarioConfig struct {
	RegionID         int64        `json:"region_id"`
	Scenario         ScenarioKind `json:"scenario"`
	HorizonMonths    int          `json:"horizon_months"`
	IncludeAttrition bool         `json:"include_attrition"`
}

type Scenario struct {
	Kind       ScenarioKind `json:"kind"`
	Multiplier float64      `json:"multiplier"`
}
