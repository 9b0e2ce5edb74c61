package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

func tarifas() []*entity.SocialServicePrice {
	return []*entity.SocialServicePrice{
		{ID: "p1", ServiceID: "srv", Quantity: 100, Price: decimal.RequireFromString("5.00")},
		{ID: "p2", ServiceID: "srv", Quantity: 1000, Price: decimal.RequireFromString("35.00")},
	}
}

func pedido(qty int, price *decimal.Decimal) dto.SocialOrderRequest {
	return dto.SocialOrderRequest{
		NetworkID:  "net",
		CategoryID: "cat",
		ServiceID:  "srv",
		ClientLink: " https://instagram.com/taller ",
		Quantity:   qty,
		Price:      price,
	}
}

func TestPrecioPorCantidad_SoloCoincidenciaExacta(t *testing.T) {
	p, ok := usecase.PrecioPorCantidad(tarifas(), 1000)
	require.True(t, ok)
	assert.True(t, p.Equal(decimal.NewFromInt(35)))

	_, ok = usecase.PrecioPorCantidad(tarifas(), 500)
	assert.False(t, ok)
}

func TestCreateOrder_PrecioDeTarifa(t *testing.T) {
	orders := &fakeOrders{}
	uc := usecase.NewSocialUseCase(&fakeSocial{prices: tarifas()}, orders)

	manual := decimal.NewFromInt(99)
	o, err := uc.CreateOrder(context.Background(), pedido(100, &manual))
	require.NoError(t, err)
	assert.True(t, o.Price.Equal(decimal.NewFromInt(5)), "la tarifa manda sobre el precio enviado")
	assert.Equal(t, entity.OrderPending, o.Status)
	assert.Equal(t, "https://instagram.com/taller", o.ClientLink)
	assert.Len(t, orders.creados, 1)
}

func TestCreateOrder_SinTarifa(t *testing.T) {
	uc := usecase.NewSocialUseCase(&fakeSocial{prices: tarifas()}, &fakeOrders{})
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, pedido(250, nil))
	assert.ErrorIs(t, err, domain.ErrPrecioRequerido)

	manual := decimal.RequireFromString("12.50")
	o, err := uc.CreateOrder(ctx, pedido(250, &manual))
	require.NoError(t, err)
	assert.True(t, o.Price.Equal(manual))
}

func TestUpdateOrderStatus_Validacion(t *testing.T) {
	uc := usecase.NewSocialUseCase(&fakeSocial{}, &fakeOrders{})
	assert.NoError(t, uc.UpdateOrderStatus(context.Background(), "o1", entity.OrderCompleted))
	assert.ErrorIs(t, uc.UpdateOrderStatus(context.Background(), "o1", "cancelled"), domain.ErrInvalidInput)
}
