package pdf

import (
	"testing"

	"github.com/oticaroyal/panel/internal/entity"
	"github.com/stretchr/testify/require"
)

func fullOrder() entity.OrderDetails {
	return entity.OrderDetails{
		ID:              1,
		OrderNumber:     "0042",
		Date:            "10/01/2025",
		DeliveryDate:    "17/01/2025",
		Client:          "Maria da Silva",
		ClientPhone:     "81998545035",
		ClientAddress:   "Rua das Flores, 123 - Recife/PE",
		ClientBirthDate: "15/05/1990",
		Seller:          "João Souza",
		TotalValue:      "R$ 1.234,56",
		AmountPaid:      "R$ 234,56",
		AmountDue:       "R$ 1.000,00",
		Observations:    "Entregar embrulhado",
		Examiner:        "Dr. Pereira",
		LensDetails: entity.LensDetails{
			LongeOdSpherical:   "-1.25",
			LongeOdCylindrical: "-0.50",
			LongeOdAxis:        "180",
			LongeOdPrism:       "2",
			LongeOdDnp:         "32",
			LongeOeSpherical:   "-1.00",
			PertoOdSpherical:   "+0.75",
			PertoOePrism:       "1",
			Addition:           "+2.00",
			Dp:                 "64",
			Height:             "22",
			FrameDescription:   "Acetato preto",
			FrameColor:         "Preto",
			LensType:           "Multifocal",
			LensCategory:       "Antirreflexo",
		},
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	require.Equal(t, "OS_0042.pdf", Filename(fullOrder()))
}

func TestRender(t *testing.T) {
	t.Parallel()

	data, err := Render(fullOrder())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_EmptyLensFields(t *testing.T) {
	t.Parallel()

	order := fullOrder()
	order.LensDetails = entity.LensDetails{}

	data, err := Render(order)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestPrescriptionRows_PrismFallback(t *testing.T) {
	t.Parallel()

	rows := prescriptionRows(entity.LensDetails{})
	require.Len(t, rows, 4)

	labels := []string{"LONGE OD", "LONGE OE", "PERTO OD", "PERTO OE"}

	for i, row := range rows {
		require.Equal(t, labels[i], row.label)

		// prism column shows a dash, all other empty cells stay empty
		require.Equal(t, [5]string{"", "", "", "-", ""}, row.cells)
	}
}

func TestPrescriptionRows_PopulatedCells(t *testing.T) {
	t.Parallel()

	rows := prescriptionRows(fullOrder().LensDetails)

	require.Equal(t, [5]string{"-1.25", "-0.50", "180", "2", "32"}, rows[0].cells)
	require.Equal(t, [5]string{"-1.00", "", "", "-", ""}, rows[1].cells)
	require.Equal(t, [5]string{"+0.75", "", "", "-", ""}, rows[2].cells)
	require.Equal(t, [5]string{"", "", "", "1", ""}, rows[3].cells)
}

// The three copies are laid out with fixed heights and must land on a
// single 297mm A4 page.
func TestBlockGeometryFitsOnePage(t *testing.T) {
	t.Parallel()

	const (
		companyHeaderHeight = 4 + 4 + 3
		orderBannerOffset   = 2
		infoTableOffset     = 2
		lensTableOffset     = 3
		frameTableOffset    = 5
		blockTail           = 2
	)

	fullInfoHeight := 6 * infoRowHeight
	lensHeight := float64(lensRowCount) * lensRowHeight

	fullBlock := companyHeaderHeight + bannerHeight + orderBannerOffset + bannerHeight +
		infoTableOffset + fullInfoHeight + lensTableOffset + lensHeight +
		addTableHeight + frameTableOffset + frameTableHeight + blockTail

	labBlock := companyHeaderHeight + bannerHeight + orderBannerOffset + bannerHeight +
		lensTableOffset + lensHeight + addTableHeight + frameTableOffset +
		frameTableHeight + blockTail

	const pageHeight = 297.0

	total := topMargin + fullBlock + blockGap + labBlock + blockGap + fullBlock
	require.LessOrEqual(t, total, pageHeight)
}
