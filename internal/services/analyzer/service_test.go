package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

type fakeFundClient struct {
	meta    *models.FundMeta
	metaErr error
	history models.TimeSeries
	histErr error
}

func (f *fakeFundClient) SearchFunds(context.Context, string) ([]models.FundSearchResult, error) {
	return nil, nil
}

func (f *fakeFundClient) GetFundMeta(context.Context, string) (*models.FundMeta, error) {
	return f.meta, f.metaErr
}

func (f *fakeFundClient) GetNAVHistory(context.Context, string) (models.TimeSeries, error) {
	return f.history, f.histErr
}

type fakeStockClient struct {
	meta    *models.StockMeta
	metaErr error
	history models.TimeSeries
	histErr error
}

func (f *fakeStockClient) LookupSymbol(context.Context, string) (*models.StockMeta, error) {
	return f.meta, f.metaErr
}

func (f *fakeStockClient) GetPriceHistory(context.Context, string) (models.TimeSeries, error) {
	return f.history, f.histErr
}

func usableSeries() models.TimeSeries {
	return series(
		models.PricePoint{Date: date(2023, 1, 1), Price: 100},
		models.PricePoint{Date: date(2023, 6, 1), Price: 120},
	)
}

func TestAnalyzeMutualFund(t *testing.T) {
	fund := &fakeFundClient{
		meta:    &models.FundMeta{SchemeCode: "120503", SchemeName: "Axis Bluechip Fund", FundHouse: "Axis Mutual Fund"},
		history: usableSeries(),
	}
	svc := NewService(common.NewSilentLogger(), fund, &fakeStockClient{})

	result := svc.AnalyzeInstrument(context.Background(), models.Holding{
		InstrumentType: models.InstrumentTypeMutualFund,
		Identifier:     "120503",
		InvestedAmount: 10000,
	})

	require.True(t, result.Success)
	assert.Equal(t, models.InstrumentTypeMutualFund, result.InstrumentType)
	assert.Equal(t, "Axis Bluechip Fund", result.Name)
	require.NotNil(t, result.Metadata.MutualFund)
	assert.Nil(t, result.Metadata.Stock)
	assert.Equal(t, 12000.0, result.Returns.CurrentValue)
	assert.Equal(t, 20.0, result.Returns.ReturnPercentage)
}

func TestAnalyzeMutualFundMetaFailure(t *testing.T) {
	fund := &fakeFundClient{metaErr: errors.New("scheme not found")}
	svc := NewService(common.NewSilentLogger(), fund, &fakeStockClient{})

	result := svc.AnalyzeInstrument(context.Background(), models.Holding{
		InstrumentType: models.InstrumentTypeMutualFund,
		Identifier:     "999999",
		InvestedAmount: 5000,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "999999", result.Name)
	assert.Zero(t, result.Returns.CurrentValue)
}

func TestAnalyzeMutualFundShortHistory(t *testing.T) {
	fund := &fakeFundClient{
		meta:    &models.FundMeta{SchemeName: "New Fund"},
		history: series(models.PricePoint{Date: date(2023, 6, 1), Price: 10}),
	}
	svc := NewService(common.NewSilentLogger(), fund, &fakeStockClient{})

	result := svc.AnalyzeInstrument(context.Background(), models.Holding{
		InstrumentType: models.InstrumentTypeMutualFund,
		Identifier:     "150001",
		InvestedAmount: 5000,
	})

	assert.False(t, result.Success)
}

func TestAnalyzeStock(t *testing.T) {
	stock := &fakeStockClient{
		meta:    &models.StockMeta{Symbol: "RELIANCE.NS", Name: "Reliance Industries", Exchange: "NSI"},
		history: usableSeries(),
	}
	svc := NewService(common.NewSilentLogger(), &fakeFundClient{}, stock)

	result := svc.AnalyzeInstrument(context.Background(), models.Holding{
		InstrumentType: models.InstrumentTypeStock,
		Identifier:     "RELIANCE",
		InvestedAmount: 10000,
	})

	require.True(t, result.Success)
	assert.Equal(t, models.InstrumentTypeStock, result.InstrumentType)
	assert.Equal(t, "Reliance Industries", result.Name)
	require.NotNil(t, result.Metadata.Stock)
	assert.Nil(t, result.Metadata.MutualFund)
}

func TestAnalyzeStockFallsBackToSymbolName(t *testing.T) {
	stock := &fakeStockClient{
		meta:    &models.StockMeta{Symbol: "TCS.NS"},
		history: usableSeries(),
	}
	svc := NewService(common.NewSilentLogger(), &fakeFundClient{}, stock)

	result := svc.AnalyzeInstrument(context.Background(), models.Holding{
		InstrumentType: models.InstrumentTypeStock,
		Identifier:     "TCS.NS",
		InvestedAmount: 1000,
	})

	require.True(t, result.Success)
	assert.Equal(t, "TCS.NS", result.Name)
}

func TestAnalyzeStockHistoryFailure(t *testing.T) {
	stock := &fakeStockClient{
		meta:    &models.StockMeta{Symbol: "INFY.NS", Name: "Infosys"},
		histErr: errors.New("upstream timeout"),
	}
	svc := NewService(common.NewSilentLogger(), &fakeFundClient{}, stock)

	result := svc.AnalyzeInstrument(context.Background(), models.Holding{
		InstrumentType: models.InstrumentTypeStock,
		Identifier:     "INFY.NS",
		InvestedAmount: 2000,
	})

	assert.False(t, result.Success)
}
