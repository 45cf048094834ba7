package controllers

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wardrobe-api/configs"
	"wardrobe-api/models"
	"wardrobe-api/responses"
)

var productCollection *mongo.Collection = configs.GetCollection("products")

// imageFields are the multipart field names the admin form uses; any subset
// may be present, at least one must be.
var imageFields = []string{"image1", "image2", "image3", "image4"}

// AddProduct creates a catalog entry from the admin multipart form and
// stores the uploaded images under ./uploads.
func AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := c.FormValue("name")
	description := c.FormValue("description")
	priceStr := c.FormValue("price")
	category := c.FormValue("category")
	subCategory := c.FormValue("subCategory")
	sizesJSON := c.FormValue("sizes")
	bestseller := c.FormValue("bestseller") == "true"

	if name == "" || description == "" || priceStr == "" || category == "" || subCategory == "" || sizesJSON == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Missing product fields",
		})
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid price",
		})
	}

	var sizes []string
	if err := json.Unmarshal([]byte(sizesJSON), &sizes); err != nil || len(sizes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid sizes",
		})
	}

	var images []string
	for _, field := range imageFields {
		file, err := c.FormFile(field)
		if err != nil {
			continue
		}
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join("uploads", filename)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Success: false,
				Message: "Error storing product image",
			})
		}
		images = append(images, "/uploads/"+filename)
	}
	if len(images) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "At least one product image is required",
		})
	}

	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Price:       price,
		Image:       images,
		Category:    category,
		SubCategory: subCategory,
		Sizes:       sizes,
		Bestseller:  bestseller,
		Date:        time.Now(),
	}

	if _, err := productCollection.InsertOne(ctx, product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Error inserting product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Product added successfully",
		Result:  &fiber.Map{"product": product},
	})
}

func ListProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		limit = 50
	}
	skip := (page - 1) * limit

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if subCategory := c.Query("subCategory"); subCategory != "" {
		filter["subCategory"] = subCategory
	}
	if name := c.Query("name"); name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}

	totalProducts, err := productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Error counting products",
		})
	}

	findOptions := options.Find()
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)

	var products []models.Product
	cursor, err := productCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Error fetching products",
		})
	}
	if err = cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Error parsing products",
		})
	}

	totalPages := (totalProducts + limit - 1) / limit

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Fetched products",
		Result: &fiber.Map{
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": totalProducts,
			"products":      products,
		},
	})
}

type removeProductRequest struct {
	ID string `json:"id" validate:"required"`
}

func RemoveProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request removeProductRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid request",
		})
	}

	productID, err := primitive.ObjectIDFromHex(request.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid product Id",
		})
	}

	result, err := productCollection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Error removing product",
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Success: false,
			Message: "Product not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Product removed successfully",
	})
}
