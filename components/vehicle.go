package components

import (
	"github.com/automoto/skidmark/vehicle"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type VehicleData struct {
	*vehicle.Vehicle
	Probe *resolv.Object // chassis-sized trigger probe, world pixels

	// last skid mark position per tire, world pixels
	LastMark    [4][2]float64
	HasMark     [4]bool
	WasScraping bool
}

var Vehicle = donburi.NewComponentType[VehicleData]()
