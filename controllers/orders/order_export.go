package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/bson"

	"wardrobe-api/models"
	"wardrobe-api/responses"
)

// ExportOrders streams every order as an Excel workbook for the back
// office.
func ExportOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := orderCollection.Find(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to fetch orders",
		})
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to parse orders",
		})
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to create Excel sheet",
		})
	}

	headers := []string{
		"ID", "Customer", "Email", "Phone", "City", "Items",
		"Amount", "Payment Method", "Paid", "Status", "Date",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, order := range orders {
		row := sheet.AddRow()

		row.AddCell().SetValue(order.ID.Hex())
		row.AddCell().SetValue(order.Address.FullName)
		row.AddCell().SetValue(order.Address.Email)
		row.AddCell().SetValue(order.Address.Phone)
		row.AddCell().SetValue(order.Address.City)

		var items []string
		for _, item := range order.Items {
			items = append(items, fmt.Sprintf("%s (%s) x%d", item.Name, item.Size, item.Quantity))
		}
		row.AddCell().SetValue(strings.Join(items, ", "))

		row.AddCell().SetValue(order.Amount)
		row.AddCell().SetValue(order.PaymentMethod)
		row.AddCell().SetValue(order.Payment)
		row.AddCell().SetValue(order.Status)
		row.AddCell().SetValue(order.Date.Format("2006-01-02 15:04:05"))
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename=orders.xlsx`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	return file.Write(c.Response().BodyWriter())
}
