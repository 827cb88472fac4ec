// Package pdf renders the printable service-order sheet: three copies
// (shop, lab, client) stacked on a single A4 page. The geometry is the
// compatibility contract with the shop's print template: every offset
// and height is fixed and text overflows instead of reflowing, so a
// fully populated order and an empty one produce identical page layouts.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/oticaroyal/panel/internal/entity"
)

const (
	companyName    = "ÓTICA ROYAL"
	companyHandle  = "@use.royall"
	companyContact = "Tel.: (81) 9.9854-5035 | sac.oticaroyal@gmail.com"
)

const (
	viaOtica       = "VIA DA ÓTICA"
	viaLaboratorio = "VIA DO LABORATÓRIO"
	viaCliente     = "VIA DO CLIENTE"
)

// All units are millimeters on an A4 portrait page.
const (
	pageLeft   = 10.0
	tableWidth = 185.0
	topMargin  = 10.0
	blockGap   = 2.0

	fontSize  = 7.0
	lineWidth = 0.4

	bannerHeight  = 5.0
	bannerSplit   = 0.8
	infoRowHeight = 4.5
	infoColShift  = 15.0

	lensRowCount  = 5
	lensRowHeight = 4.0
	lensColCount  = 6

	addTableHeight   = 12.0
	frameTableHeight = 10.0
)

// Filename names the artifact by the order number, OS_0001.pdf.
func Filename(o entity.OrderDetails) string {
	return fmt.Sprintf("OS_%s.pdf", o.OrderNumber)
}

func Render(o entity.OrderDetails) ([]byte, error) {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	f.AddPage()
	f.SetFont("Helvetica", "", fontSize)

	d := &doc{
		f:  f,
		tr: f.UnicodeTranslatorFromDescriptor(""),
	}

	y := topMargin
	y = d.copyBlock(y, viaOtica, o, true, false)
	y = d.copyBlock(y+blockGap, viaLaboratorio, o, false, true)
	d.copyBlock(y+blockGap, viaCliente, o, true, false)

	if f.Err() {
		return nil, f.Error()
	}

	var buf bytes.Buffer

	err := f.Output(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type doc struct {
	f  *fpdf.Fpdf
	tr func(string) string
}

func (d *doc) copyBlock(y float64, via string, o entity.OrderDetails, fullInfo, lab bool) float64 {
	y = d.companyHeader(y)
	y = d.viaBanner(y, via)
	y = d.orderBanner(y+2, o.OrderNumber)

	if !lab {
		rows := 2
		if fullInfo {
			rows = 6
		}

		y = d.infoTable(y+2, o, rows)
	}

	y = d.lensTable(y+3, o.LensDetails)
	y = d.addTable(y, o.LensDetails)
	y = d.frameTable(y+5, o.LensDetails)

	return y + 2
}

func (d *doc) companyHeader(y float64) float64 {
	d.boldText(pageLeft, y, companyName)
	y += 4
	d.text(pageLeft, y, companyHandle)
	y += 4
	d.text(pageLeft, y, companyContact)

	return y + 3
}

func (d *doc) viaBanner(y float64, via string) float64 {
	d.banner(pageLeft, y, tableWidth, bannerHeight, via)

	return y + bannerHeight
}

func (d *doc) orderBanner(y float64, orderNumber string) float64 {
	nameWidth := tableWidth * bannerSplit
	d.banner(pageLeft, y, nameWidth, bannerHeight, companyName)
	d.banner(pageLeft+nameWidth, y, tableWidth-nameWidth, bannerHeight, "O.S. Nº "+orderNumber)

	return y + bannerHeight
}

// grid is a declarative bordered table: an outer rectangle with inner
// rules at fixed offsets.
type grid struct {
	height float64
	rowYs  []float64
	colXs  []float64
}

func (d *doc) drawGrid(y float64, g grid) {
	d.f.SetDrawColor(0, 0, 0)
	d.f.SetLineWidth(lineWidth)
	d.f.Rect(pageLeft, y, tableWidth, g.height, "D")

	for _, ry := range g.rowYs {
		d.f.Line(pageLeft, y+ry, pageLeft+tableWidth, y+ry)
	}

	for _, cx := range g.colXs {
		d.f.Line(pageLeft+cx, y, pageLeft+cx, y+g.height)
	}
}

func infoGrid(rows int) grid {
	g := grid{height: float64(rows) * infoRowHeight}

	for i := 1; i < rows; i++ {
		g.rowYs = append(g.rowYs, infoRowHeight*float64(i))
	}

	colW := tableWidth / 4
	for c := 1; c < 4; c++ {
		x := colW * float64(c)
		// The label column is wider than a quarter; the first rule is
		// pulled left to line the values up.
		if c == 1 {
			x -= infoColShift
		}

		g.colXs = append(g.colXs, x)
	}

	return g
}

func (d *doc) infoTable(y float64, o entity.OrderDetails, rows int) float64 {
	g := infoGrid(rows)
	d.drawGrid(y, g)

	colW := tableWidth / 4
	right := pageLeft + colW*2

	rowY := func(i int) float64 {
		return y + infoRowHeight*float64(i) + 3
	}

	d.boldText(pageLeft+2, rowY(0), "CLIENTE")
	d.text(pageLeft+50, rowY(0), o.Client)
	d.boldText(right+2, rowY(0), "EXAMINADOR")
	d.text(right+58, rowY(0), o.Examiner)

	if rows >= 2 {
		d.boldText(pageLeft+2, rowY(1), "ENDEREÇO")
		d.text(pageLeft+35, rowY(1), o.ClientAddress)
		d.boldText(right+2, rowY(1), "TELEFONE")
		d.text(right+58, rowY(1), o.ClientPhone)
	}

	if rows >= 3 {
		d.boldText(pageLeft+2, rowY(2), "DATA DA VENDA")
		d.text(pageLeft+50, rowY(2), o.Date)
		d.boldText(right+2, rowY(2), "DATA DE NASC.")
		d.text(right+58, rowY(2), o.ClientBirthDate)
	}

	if rows >= 4 {
		d.boldText(pageLeft+2, rowY(3), "ENTREGA PREVISTA")
		d.text(pageLeft+50, rowY(3), o.DeliveryDate)
		d.boldText(right+2, rowY(3), "VALOR DA VENDA")
		d.text(right+58, rowY(3), orDefault(o.TotalValue, "0,00"))
	}

	if rows >= 5 {
		d.boldText(pageLeft+2, rowY(4), "ENTREGUE EM")
		d.text(pageLeft+18, rowY(4), "-")
		d.boldText(right+2, rowY(4), "VALOR PAGO")
		d.text(right+58, rowY(4), orDefault(o.AmountPaid, "0,00"))
	}

	if rows >= 6 {
		d.boldText(pageLeft+2, rowY(5), "OBSERVAÇÃO")
		d.text(pageLeft+50, rowY(5), o.Observations)
		d.boldText(right+2, rowY(5), "VENDEDOR")
		d.text(right+58, rowY(5), o.Seller)
	}

	return y + g.height
}

// prescriptionRow is one line of the lens grid: the quadrant label and
// the five measurement cells (ESF., CIL., EIXO, PRISMA, DNP).
type prescriptionRow struct {
	label string
	cells [5]string
}

// Prism cells fall back to a dash, every other empty cell stays empty.
// The printed template reads that way, so the inconsistency is kept.
func prescriptionRows(l entity.LensDetails) []prescriptionRow {
	return []prescriptionRow{
		{"LONGE OD", [5]string{l.LongeOdSpherical, l.LongeOdCylindrical, l.LongeOdAxis, orDefault(l.LongeOdPrism, "-"), l.LongeOdDnp}},
		{"LONGE OE", [5]string{l.LongeOeSpherical, l.LongeOeCylindrical, l.LongeOeAxis, orDefault(l.LongeOePrism, "-"), l.LongeOeDnp}},
		{"PERTO OD", [5]string{l.PertoOdSpherical, l.PertoOdCylindrical, l.PertoOdAxis, orDefault(l.PertoOdPrism, "-"), l.PertoOdDnp}},
		{"PERTO OE", [5]string{l.PertoOeSpherical, l.PertoOeCylindrical, l.PertoOeAxis, orDefault(l.PertoOePrism, "-"), l.PertoOeDnp}},
	}
}

func lensGrid() grid {
	g := grid{height: lensRowCount * lensRowHeight}

	for r := 1; r < lensRowCount; r++ {
		g.rowYs = append(g.rowYs, lensRowHeight*float64(r))
	}

	colW := tableWidth / lensColCount
	for c := 1; c < lensColCount; c++ {
		g.colXs = append(g.colXs, colW*float64(c))
	}

	return g
}

func (d *doc) lensTable(y float64, l entity.LensDetails) float64 {
	g := lensGrid()
	d.drawGrid(y, g)

	colW := tableWidth / lensColCount

	for i, header := range []string{"", "ESF.", "CIL.", "EIXO", "PRISMA", "DNP"} {
		d.boldText(pageLeft+colW*float64(i)+2, y+3, header)
	}

	for i, row := range prescriptionRows(l) {
		rowY := y + lensRowHeight*float64(i+1) + 3

		d.text(pageLeft+2, rowY, row.label)

		for c, cell := range row.cells {
			d.text(pageLeft+colW*float64(c+1)+2, rowY, cell)
		}
	}

	return y + g.height
}

func (d *doc) addTable(y float64, l entity.LensDetails) float64 {
	colW := tableWidth / 3

	g := grid{
		height: addTableHeight,
		rowYs:  []float64{4},
		colXs:  []float64{colW, colW * 2},
	}

	d.drawGrid(y, g)

	for i, header := range []string{"ADD", "DP", "ALTURA"} {
		d.boldText(pageLeft+colW*float64(i)+2, y+2.8, header)
	}

	dataY := y + 4 + 2.8
	d.text(pageLeft+2, dataY, l.Addition)
	d.text(pageLeft+colW+2, dataY, l.Dp)
	d.text(pageLeft+colW*2+2, dataY, l.Height)

	return y + g.height
}

func (d *doc) frameTable(y float64, l entity.LensDetails) float64 {
	colW := tableWidth / 4

	g := grid{
		height: frameTableHeight,
		rowYs:  []float64{4},
		colXs:  []float64{colW, colW * 2, colW * 3},
	}

	d.drawGrid(y, g)

	for i, header := range []string{"ARMAÇÃO", "COR", "LENTE", "TIPO"} {
		d.boldText(pageLeft+colW*float64(i)+2, y+2.8, header)
	}

	dataY := y + 4 + 2.8
	d.text(pageLeft+2, dataY, l.FrameDescription)
	d.text(pageLeft+colW+2, dataY, l.FrameColor)
	d.text(pageLeft+colW*2+2, dataY, l.LensType)
	d.text(pageLeft+colW*3+2, dataY, l.LensCategory)

	return y + g.height
}

func (d *doc) banner(x, y, w, h float64, text string) {
	d.f.SetFillColor(255, 255, 0)
	d.f.SetDrawColor(0, 0, 0)
	d.f.SetLineWidth(lineWidth)
	d.f.Rect(x, y, w, h, "FD")

	translated := d.tr(text)

	d.f.SetFont("Helvetica", "B", fontSize)
	d.f.Text(x+w/2-d.f.GetStringWidth(translated)/2, y+h/2+1.2, translated)
	d.f.SetFont("Helvetica", "", fontSize)
}

func (d *doc) text(x, y float64, text string) {
	d.f.Text(x, y, d.tr(text))
}

func (d *doc) boldText(x, y float64, text string) {
	d.f.SetFont("Helvetica", "B", fontSize)
	d.f.Text(x, y, d.tr(text))
	d.f.SetFont("Helvetica", "", fontSize)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
