package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

type sampleRow struct {
	Location string
	Year     int
	Price    float64
	Demand   float64
	Supply   float64
}

// sampleRows は元データと同じ列構成のサンプルです。
var sampleRows = []sampleRow{
	{"Wakad", 2020, 8514.5, 1230, 1820},
	{"Wakad", 2021, 8920.0, 1410, 1905},
	{"Wakad", 2022, 9610.25, 1580, 2010},
	{"Wakad", 2023, 10340.0, 1702, 2150},
	{"Aundh", 2020, 11250.0, 980, 1290},
	{"Aundh", 2021, 11840.75, 1040, 1335},
	{"Aundh", 2022, 12560.0, 1125, 1400},
	{"Aundh", 2023, 13105.5, 1190, 1460},
	{"Akurdi", 2020, 6120.0, 620, 910},
	{"Akurdi", 2021, 6380.0, 655, 940},
	{"Akurdi", 2022, 6795.0, 710, 985},
	{"Akurdi", 2023, 7240.0, 760, 1030},
	{"Ambegaon Budruk", 2020, 5480.0, 540, 820},
	{"Ambegaon Budruk", 2021, 5715.0, 575, 845},
	{"Ambegaon Budruk", 2022, 6050.0, 610, 880},
	{"Ambegaon Budruk", 2023, 6430.0, 650, 925},
}

func main() {
	out := flag.String("out", "Sample_data.xlsx", "output workbook path")
	flag.Parse()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"final location", "year", "total_sales - igr", "total sold - igr", "total units"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		log.Fatalf("failed to write header: %v", err)
	}
	for i, r := range sampleRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			log.Fatalf("failed to resolve cell: %v", err)
		}
		row := []interface{}{r.Location, r.Year, r.Price, r.Demand, r.Supply}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Fatalf("failed to write row %d: %v", i+2, err)
		}
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("failed to save %s: %v", *out, err)
	}
	fmt.Printf("📊 %d 行のサンプルデータを %s に書き出しました\n", len(sampleRows), *out)
}
