// Package export renders finished cutting plans to PDF, Excel and DXF
// files, including QR-coded cut labels.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/cutplan/internal/costing"
	"github.com/piwi3910/cutplan/internal/model"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

// itemColors is the palette cycled over placed items on a board page.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// formatMoney renders an amount with the configured currency symbol.
func formatMoney(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", v, currency)
}

// ExportPDF generates the cutting plan report: one landscape page per
// board with a scaled layout diagram, followed by a summary page with
// the stacked cost tables.
func ExportPDF(path string, plan model.CutPlan, summary costing.Summary) error {
	boards := plan.AllBoards()
	if len(boards) == 0 {
		return fmt.Errorf("no boards to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, board := range boards {
		pdf.AddPage()
		renderBoardPage(pdf, board, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, plan, summary)

	return pdf.OutputFileAndClose(path)
}

// renderBoardPage draws a single board layout on the current PDF page.
func renderBoardPage(pdf *fpdf.Fpdf, board *model.BoardLayout, pageNum int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Board %d: %s #%d (%.0f x %.0f mm) - %s",
		pageNum, board.Material.Name, board.Index+1, board.Width(), board.Length(), board.Classify())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Used: %.0f x %.0f mm | Cut length: %.0f mm | Efficiency: %.1f%%",
		len(board.PlacedItems), board.UsedWidth(), board.UsedLength(), board.CutLength(), board.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the board (width horizontal, length vertical) into the page.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/board.Width(), drawHeight/board.Length())

	canvasW := board.Width() * scale
	canvasH := board.Length() * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Board background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Kerf cut rectangles, drawn under the items
	pdf.SetFillColor(70, 70, 70)
	for _, cr := range board.CutRects {
		pdf.Rect(offsetX+cr.X*scale, offsetY+cr.Y*scale, cr.Width*scale, cr.Height*scale, "F")
	}

	// Placed items
	for i, p := range board.PlacedItems {
		col := itemColors[i%len(itemColors)]
		pw := p.Width * scale
		ph := p.Height * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		drawItemLabel(pdf, p, px, py, pw, ph)
	}

	drawDimensionAnnotations(pdf, board, scale, offsetX, offsetY, canvasW, canvasH)
}

// drawItemLabel renders the item name and oriented dimensions on a
// white-background label centered in the item rectangle, so text stays
// readable over any fill color.
func drawItemLabel(pdf *fpdf.Fpdf, p model.PlacedItem, px, py, pw, ph float64) {
	if pw <= 15 || ph <= 8 {
		return
	}

	pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
	pdf.SetTextColor(0, 0, 0)

	label := p.Spec.Name
	if p.Rotated {
		label += " (R)"
	}
	dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Height)

	labelW := pdf.GetStringWidth(label)
	dimsW := pdf.GetStringWidth(dims)
	boxW := math.Max(labelW, dimsW) + 2

	if boxW >= pw-2 {
		return
	}

	boxH := 4.5
	if ph > 14 {
		boxH = 9.0
	}

	// White background behind the text
	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(px+(pw-boxW)/2, py+(ph-boxH)/2, boxW, boxH, "F")

	pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
	pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")

	if ph > 14 && dimsW < pw-2 {
		pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
		pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
	}
}

// drawDimensionAnnotations adds width and length labels outside the
// board rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, board *model.BoardLayout, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", board.Width())
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	lengthLabel := fmt.Sprintf("%.0f mm", board.Length())
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX-3-lLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the stacked summary tables: material usage,
// banding, cuts, and the grand total.
func renderSummaryPage(pdf *fpdf.Fpdf, plan model.CutPlan, summary costing.Summary) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cutting Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Material usage table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Material Usage", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{55, 40, 18, 24, 20, 22, 40}
	headers := []string{"Material", "Board Size", "Full", "Narrow 1/2", "Wide 1/2", "Billed", "Cost"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, usage := range summary.Usages {
		rowData := []string{
			usage.Material.Name,
			fmt.Sprintf("%.0f x %.0f mm", usage.Material.Width, usage.Material.Length),
			fmt.Sprintf("%d", usage.FullBoards),
			fmt.Sprintf("%d", usage.NarrowHalves),
			fmt.Sprintf("%d", usage.WideHalves),
			fmt.Sprintf("%.1f", usage.BilledQuantity),
			formatMoney(usage.Cost, summary.Currency),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 8

	// Banding and cutting totals
	y = renderTotalsTable(pdf, y, "Edge Banding", summary.TotalWrapLengthMM, summary.TotalWrapCost, summary.Currency)
	y += 8
	y = renderTotalsTable(pdf, y, "Saw Cuts", summary.TotalCutLengthMM, summary.TotalCutCost, summary.Currency)
	y += 10

	// Grand total
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(60, 8, "Grand Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, formatMoney(summary.GrandTotal, summary.Currency), "", 0, "L", false, 0, "")

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	footer := fmt.Sprintf("Generated by CutPlan - %d boards, %d items placed", plan.BoardCount(), plan.PlacedCount())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, footer, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderTotalsTable draws a two-row length/cost table and returns the
// next free Y offset.
func renderTotalsTable(pdf *fpdf.Fpdf, y float64, title string, lengthMM, cost float64, currency string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft+5, y)
	pdf.CellFormat(50, 5, "Total length:", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 5, fmt.Sprintf("%.0f mm (%.2f m)", lengthMM, lengthMM/1000.0), "", 0, "L", false, 0, "")
	y += 6
	pdf.SetXY(marginLeft+5, y)
	pdf.CellFormat(50, 5, "Cost:", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 5, formatMoney(cost, currency), "", 0, "L", false, 0, "")
	return y + 6
}

// labelFontSize returns a font size matched to the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
