package entities

// MachineAssignment is one curing press currently moulding a SKU, as
// reported by the daily mould report. RH/LH sides share a machine name,
// so distinct machine names are what MachineCount counts.
type MachineAssignment struct {
	Machine    string
	SKU        SKUCode
	MouldLife  float64
	TargetLife float64
}

// MouldHealth returns MouldLife/TargetLife and whether the ratio is
// defined (false when TargetLife is not positive).
func (a MachineAssignment) MouldHealth() (float64, bool) {
	if a.TargetLife <= 0 {
		return 0, false
	}
	return a.MouldLife / a.TargetLife, true
}
