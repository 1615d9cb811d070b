package profile

import "sort"

// FanCurvePoint maps a temperature (degrees Celsius) to a fan duty
// percentage.
type FanCurvePoint struct {
	Temp int `yaml:"temp" toml:"temp"`
	Duty int `yaml:"duty" toml:"duty"`
}

// FanTable is a named default fan curve. Tables come from local
// configuration and are read-only; profiles reference them by name.
type FanTable struct {
	Name   string          `yaml:"name" toml:"name"`
	Points []FanCurvePoint `yaml:"points" toml:"points"`
}

// Clone returns an independent copy of the table.
func (t FanTable) Clone() FanTable {
	out := t
	if t.Points != nil {
		out.Points = make([]FanCurvePoint, len(t.Points))
		copy(out.Points, t.Points)
	}
	return out
}

// DutyAt returns the duty for temp by stepping the curve: the duty of the
// highest point at or below temp, or the first point's duty below the curve.
func (t FanTable) DutyAt(temp int) int {
	if len(t.Points) == 0 {
		return 0
	}
	pts := make([]FanCurvePoint, len(t.Points))
	copy(pts, t.Points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Temp < pts[j].Temp })

	duty := pts[0].Duty
	for _, p := range pts {
		if p.Temp > temp {
			break
		}
		duty = p.Duty
	}
	return duty
}

// DefaultFanTables returns the built-in fan curves used when the client
// configuration provides none.
func DefaultFanTables() []FanTable {
	return []FanTable{
		{
			Name: "Balanced",
			Points: []FanCurvePoint{
				{Temp: 0, Duty: 0},
				{Temp: 50, Duty: 30},
				{Temp: 65, Duty: 45},
				{Temp: 75, Duty: 60},
				{Temp: 85, Duty: 100},
			},
		},
		{
			Name: "Quiet",
			Points: []FanCurvePoint{
				{Temp: 0, Duty: 0},
				{Temp: 55, Duty: 20},
				{Temp: 70, Duty: 40},
				{Temp: 80, Duty: 70},
				{Temp: 90, Duty: 100},
			},
		},
		{
			Name: "Silent",
			Points: []FanCurvePoint{
				{Temp: 0, Duty: 0},
				{Temp: 60, Duty: 15},
				{Temp: 75, Duty: 35},
				{Temp: 85, Duty: 70},
				{Temp: 95, Duty: 100},
			},
		},
	}
}
