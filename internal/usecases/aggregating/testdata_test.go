package aggregating

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

func exampleSales() []domain.Sale {
	return []domain.Sale{
		{Year: 2020, Region: "EU", Model: "X3", SalesVolume: 100},
		{Year: 2020, Region: "US", Model: "X3", SalesVolume: 50},
		{Year: 2021, Region: "EU", Model: "X5", SalesVolume: 200},
	}
}

func mixedSales() []domain.Sale {
	return []domain.Sale{
		{Year: 2023, Region: "Asia", Model: "i8", SalesVolume: 40},
		{Year: 2021, Region: "Europe", Model: "M5", SalesVolume: 70},
		{Year: 2022, Region: "Asia", Model: "X1", SalesVolume: 30},
		{Year: 2021, Region: "Middle East", Model: "i8", SalesVolume: 0},
		{Year: 2022, Region: "North America", Model: "M5", SalesVolume: 55},
		{Year: 2023, Region: "Europe", Model: "X1", SalesVolume: 15},
		{Year: 2020, Region: "Asia", Model: "X3", SalesVolume: 90},
	}
}
