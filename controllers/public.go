package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/openmatch/matchex/config"
	"github.com/openmatch/matchex/controllers/entities"
	"github.com/openmatch/matchex/controllers/helpers"
	"github.com/openmatch/matchex/engine"
	"github.com/openmatch/matchex/models"
	"github.com/openmatch/matchex/types"
)

// Engine is bound once by routes.SetupRouter before the server listens.
var Engine *engine.Engine

func OrderToEntity(order models.Order) entities.OrderEntity {
	return entities.OrderEntity{
		ID:        order.ID,
		UUID:      order.UUID,
		Market:    config.App.Market,
		Side:      order.Side,
		Price:     order.Price,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func TradeToEntity(trade models.Trade) entities.TradeEntity {
	return entities.TradeEntity{
		ID:        trade.ID,
		Market:    config.App.Market,
		Price:     trade.Price,
		Quantity:  trade.Quantity,
		CreatedAt: trade.CreatedAt,
	}
}

func GetTimestamp(c *fiber.Ctx) error {
	return c.Status(200).JSON(time.Now())
}

func GetPendingOrders(c *fiber.Ctx) error {
	side := c.Query("side")

	if len(side) > 0 && side != types.SideBuy && side != types.SideSell {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.order.invalid_side"},
		})
	}

	orders, err := Engine.PendingOrders(side)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	order_entities := make([]entities.OrderEntity, 0, len(orders))
	for _, order := range orders {
		order_entities = append(order_entities, OrderToEntity(order))
	}

	return c.Status(200).JSON(order_entities)
}

func GetCompletedOrders(c *fiber.Ctx) error {
	trades, err := Engine.CompletedOrders()
	if err != nil {
		return storeErrorResponse(c, err)
	}

	trade_entities := make([]entities.TradeEntity, 0, len(trades))
	for _, trade := range trades {
		trade_entities = append(trade_entities, TradeToEntity(trade))
	}

	return c.Status(200).JSON(trade_entities)
}

func GetDepth(c *fiber.Ctx) error {
	var depth types.Depth

	if config.Redis != nil {
		if err := config.Redis.CachedDepth(&depth); err == nil {
			return c.Status(200).JSON(depth)
		}
	}

	return c.Status(200).JSON(Engine.DepthSnapshot())
}
