package booking

import (
	"context"
	"testing"

	"ksrtc_booker/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBusQuotesProviderName(t *testing.T) {
	req := testRequest(entities.StrategyURL)
	req.BusProvider = "ST. MARY'S"
	b := newFakeBrowser()

	f := seatFlow(b, req)
	require.NoError(t, f.selectBus(context.Background()))

	card := `div.srch-card:has(:text('ST. MARY\'S')) >> nth=0`
	assert.True(t, b.clicked(card+" >> .selectbutton"), b.clicks)
}

func TestSelectPointsQuoteNames(t *testing.T) {
	req := testRequest(entities.StrategyURL)
	req.PickupPoint = "St. Jude's"
	req.DropoffPoint = "Collector's Office"
	b := newFakeBrowser()

	f := seatFlow(b, req)
	require.NoError(t, f.selectPickup(context.Background()))
	require.NoError(t, f.selectDrop(context.Background()))

	chart := f.seatChart()
	assert.True(t, b.clicked(chart+` >> div.point-opt.active >> div:has-text('St. Jude\'s')`))
	assert.True(t, b.clicked(chart+` >> div.point-inp.flex-vc:has-text('Collector\'s Office')`))
	assert.True(t, b.clicked(chart+` >> div.drop--val:has-text('Collector\'s Office')`))
}

func TestSwapCitiesWarnsAboutOrigin(t *testing.T) {
	req := testRequest(entities.StrategySwap)
	logger, hook := test.NewNullLogger()
	b := newFakeBrowser()

	f := seatFlow(b, req)
	f.logger = logger
	require.NoError(t, f.swapCities(context.Background()))

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
			assert.Contains(t, e.Message, req.Journey.From.Name)
		}
	}
	assert.True(t, warned)
	assert.Empty(t, b.fills[entities.DefaultSelectors().FromCityInput])
}
