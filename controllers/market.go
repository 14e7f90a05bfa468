package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/openmatch/matchex/controllers/helpers"
	"github.com/openmatch/matchex/engine"
)

func CreateOrder(c *fiber.Ctx) error {
	err_src := new(helpers.Errors)
	payload := new(helpers.CreateOrderParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	payload.Vaildate(err_src)
	intent := payload.BuildIntent(err_src)

	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	result, err := Engine.Submit(*intent)
	if err != nil {
		return submitErrorResponse(c, err)
	}

	return c.Status(201).JSON(result)
}

func submitErrorResponse(c *fiber.Ctx, err error) error {
	var validation_err *engine.ValidationError
	if errors.As(err, &validation_err) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{validation_err.Error()},
		})
	}

	var consistency_err *engine.ConsistencyViolation
	if errors.As(err, &consistency_err) {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return storeErrorResponse(c, err)
}

func storeErrorResponse(c *fiber.Ctx, err error) error {
	var storage_err *engine.StorageFailure
	if errors.As(err, &storage_err) {
		return c.Status(503).JSON(helpers.Errors{
			Errors: []string{"server.storage_unavailable"},
		})
	}

	return c.Status(500).JSON(helpers.Errors{
		Errors: []string{"server.internal_error"},
	})
}
