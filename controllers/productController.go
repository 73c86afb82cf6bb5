package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Wekesa/sokoni-api/initializers"
	"github.com/Wekesa/sokoni-api/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Product handlers
func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product", err)
		}
		return
	}

	var updateData models.Product
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product.Name = updateData.Name
	product.Description = updateData.Description
	product.Price = updateData.Price
	product.Stock = updateData.Stock
	product.Category = updateData.Category

	if err := initializers.DB.Save(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Product{}, productId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	productIdStr := ctx.PostForm("productId")
	if productIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing productId", nil)
		return
	}

	productId, err := strconv.Atoi(productIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid productId", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "sokoni"
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key to prevent overwrites
		uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	if len(uploadedUrls) > 0 {
		var existing []string
		if len(product.Images) > 0 {
			if err := json.Unmarshal(product.Images, &existing); err != nil {
				log.Printf("Error parsing existing images for product %d: %v", productId, err)
			}
		}
		merged, err := json.Marshal(append(existing, uploadedUrls...))
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to encode image list", err)
			return
		}
		if err := initializers.DB.Model(&product).Update("images", datatypes.JSON(merged)).Error; err != nil {
			log.Printf("Error saving images to database: %v", err)
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func GetProducts(ctx *gin.Context) {
	var products []models.Product

	// Add pagination
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.Product{})

	// Add search by name if provided
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	result := query.Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	// Get total count for pagination
	var count int64
	initializers.DB.Model(&models.Product{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}
