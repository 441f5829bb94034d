package rules

// Default returns the built-in rule table for the Nagpur commercial
// market. A YAML rule file overrides it wholesale, never per-key.
func Default() *Table {
	return &Table{
		SizeGuidelines: map[string]Range{
			"Office Space":     {Min: 200, Max: 50000},
			"Retail Shop":      {Min: 100, Max: 10000},
			"Restaurant":       {Min: 500, Max: 15000},
			"Warehouse":        {Min: 1000, Max: 100000},
			"Showroom":         {Min: 1000, Max: 20000},
			"Industrial Space": {Min: 2000, Max: 200000},
			"Co-working Space": {Min: 500, Max: 20000},
		},
		PropertyRules: map[string]CategoryRule{
			"Office Space": {
				ParkingSlots: Range{Min: 0, Max: 100},
				PowerBackup:  Range{Min: 0, Max: 1},
				WaterSupply:  Range{Min: 0, Max: 1},
			},
			"Retail Shop": {
				ParkingSlots: Range{Min: 0, Max: 50},
				PowerBackup:  Range{Min: 0, Max: 1},
				WaterSupply:  Range{Min: 0, Max: 1},
			},
			"Restaurant": {
				ParkingSlots: Range{Min: 0, Max: 100},
				PowerBackup:  Range{Min: 0, Max: 1},
				WaterSupply:  Range{Min: 1, Max: 1},
			},
			"Warehouse": {
				ParkingSlots: Range{Min: 0, Max: 200},
				PowerBackup:  Range{Min: 0, Max: 1},
				WaterSupply:  Range{Min: 0, Max: 1},
			},
			"Showroom": {
				ParkingSlots: Range{Min: 0, Max: 100},
				PowerBackup:  Range{Min: 0, Max: 1},
				WaterSupply:  Range{Min: 0, Max: 1},
			},
			"Industrial Space": {
				ParkingSlots: Range{Min: 0, Max: 500},
				PowerBackup:  Range{Min: 0, Max: 1},
				WaterSupply:  Range{Min: 0, Max: 1},
			},
			"Co-working Space": {
				ParkingSlots: Range{Min: 0, Max: 50},
				PowerBackup:  Range{Min: 0, Max: 1},
				WaterSupply:  Range{Min: 0, Max: 1},
			},
		},
		AmenityImpact: map[string]float64{
			"parking":               5.0,
			"power_backup":          4.0,
			"water_supply":          2.0,
			"security":              3.5,
			"atm_near_me":           0.5,
			"airport_near_me":       1.5,
			"bus_stop_near_me":      1.0,
			"hospital_near_me":      0.75,
			"mall_near_me":          2.0,
			"market_near_me":        1.25,
			"metro_station_near_me": 2.5,
			"park_near_me":          0.5,
			"school_near_me":        0.75,
			"fire_safety":           2.5,
			"loading_dock":          3.0,
			"high_speed_internet":   3.0,
			"conference_room":       2.0,
			"cafeteria":             1.5,
			"reception_area":        2.0,
		},
		Areas: AreaWindows{
			BuiltUp: Window{Min: 0.80, Max: 0.90},
			Carpet:  Window{Min: 0.65, Max: 0.80},
		},
		Business: BusinessRules{
			WaterRequired:    []string{"Restaurant"},
			PowerRecommended: []string{"Data Center", "IT Services"},
		},
		Outliers: OutlierRules{
			ParkingThreshold:      100,
			ParkingExemptTypes:    []string{"Warehouse", "Industrial Space"},
			MinSizeForHighParking: 5000,
		},
		WarningDecay:  0.8,
		FairTolerance: 0.25,
	}
}
