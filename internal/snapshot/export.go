package snapshot

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// BuildFleetXLSX renders a fleet report workbook: summary stats, device roster
// and SIM inventory.
func BuildFleetXLSX(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	f := excelize.NewFile()
	summarySheet := "summary"
	devicesSheet := "devices"
	simsSheet := "sim_cards"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(devicesSheet)
	f.NewSheet(simsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Fleet Snapshot Report")
	_ = f.SetCellValue(summarySheet, "A3", "Generation ID")
	_ = f.SetCellValue(summarySheet, "B3", snap.Stats.GenerationID)
	_ = f.SetCellValue(summarySheet, "A4", "Generated At")
	_ = f.SetCellValue(summarySheet, "B4", snap.Stats.GeneratedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A5", "Total Devices")
	_ = f.SetCellValue(summarySheet, "B5", snap.Stats.TotalDevices)
	_ = f.SetCellValue(summarySheet, "A6", "Online Devices")
	_ = f.SetCellValue(summarySheet, "B6", snap.Stats.OnlineDevices)
	_ = f.SetCellValue(summarySheet, "A7", "Device Types")
	_ = f.SetCellValue(summarySheet, "B7", snap.Stats.DeviceTypes)
	_ = f.SetCellValue(summarySheet, "A8", "Historical Points")
	_ = f.SetCellValue(summarySheet, "B8", snap.Stats.DataPoints)
	_ = f.SetCellValue(summarySheet, "A9", "SIM Cards")
	_ = f.SetCellValue(summarySheet, "B9", snap.Stats.SimCards)

	deviceHeader := []string{"Device ID", "Name", "Type", "Status", "Latitude", "Longitude", "Installed", "Last Update"}
	for i, title := range deviceHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(devicesSheet, cell, title)
	}
	for i, d := range snap.Devices {
		row := i + 2
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("A%d", row), d.ID)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("B%d", row), d.Name)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("C%d", row), d.Type)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("D%d", row), string(d.Status))
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("E%d", row), d.Location.Lat)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("F%d", row), d.Location.Lng)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("G%d", row), d.InstallDate)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("H%d", row), d.LastUpdate.Format(time.RFC3339))
	}

	simHeader := []string{"Card Number", "Operator", "Total (MB)", "Used (MB)", "Remaining (MB)", "Usage %", "Expires", "Status", "Fee", "Binding"}
	for i, title := range simHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(simsSheet, cell, title)
	}
	for i, c := range snap.SimCards {
		row := i + 2
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("A%d", row), c.CardNumber)
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("B%d", row), c.Operator)
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("C%d", row), c.TotalMB)
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("D%d", row), c.UsedMB)
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("E%d", row), c.RemainingMB)
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("F%d", row), c.UsagePercent)
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("G%d", row), c.ExpireDate)
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("H%d", row), string(c.Status))
		_ = f.SetCellValue(simsSheet, fmt.Sprintf("I%d", row), c.MonthlyFee)
		if c.DeviceBinding != nil {
			_ = f.SetCellValue(simsSheet, fmt.Sprintf("J%d", row), *c.DeviceBinding)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildFleetPDF renders a minimal PDF fleet report.
func BuildFleetPDF(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Fleet Snapshot Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generation: %s", snap.Stats.GenerationID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", snap.Stats.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Devices: %d (%d online)", snap.Stats.TotalDevices, snap.Stats.OnlineDevices))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Historical Points: %d", snap.Stats.DataPoints))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("SIM Cards: %d", snap.Stats.SimCards))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(40, 6, "Device ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Installed", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, d := range snap.Devices {
		pdf.CellFormat(40, 6, d.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, d.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, string(d.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, d.InstallDate, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
