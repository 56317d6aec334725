package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gharseva/models"
	"gharseva/services/catalog"
	"gharseva/services/coupon"
	"gharseva/services/storage"
	"gharseva/stream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated catalog and coupon operations.
type AdminHandler struct {
	CatalogSvc catalog.CatalogService
	CouponSvc  coupon.CouponService
	StorageSvc storage.StorageService
	Publisher  stream.Publisher
	Logger     *zap.Logger
}

// publishChange emits a catalog change event after an admin edit. The Kafka
// consumer turns it into a cache refresh task, so failures here only delay
// the refresh rather than losing the edit.
func (ah *AdminHandler) publishChange(c *gin.Context, category, reason string) {
	event := models.CatalogChangedEvent{
		Category:  category,
		Reason:    reason,
		ChangedAt: time.Now(),
	}
	if err := ah.Publisher.PublishCatalogChanged(c.Request.Context(), event); err != nil {
		ah.Logger.Warn("admin: failed to publish catalog change",
			zap.String("reason", reason), zap.Error(err))
	}
}

// CreateService handles POST /api/admin/services.
func (ah *AdminHandler) CreateService(c *gin.Context) {
	var record models.ServiceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	id, err := ah.CatalogSvc.CreateService(c.Request.Context(), record)
	if err != nil {
		ah.Logger.Error("CreateService: failed to create record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service", "message": err.Error()})
		return
	}

	ah.publishChange(c, record.Category, "service_created")
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateService handles PUT /api/admin/services/:id.
func (ah *AdminHandler) UpdateService(c *gin.Context) {
	var record models.ServiceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	record.ID = c.Param("id")

	if err := ah.CatalogSvc.UpdateService(c.Request.Context(), record); err != nil {
		ah.Logger.Error("UpdateService: failed to update record", zap.String("id", record.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service", "message": err.Error()})
		return
	}

	ah.publishChange(c, record.Category, "service_updated")
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteService handles DELETE /api/admin/services/:id.
func (ah *AdminHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := ah.CatalogSvc.DeleteService(c.Request.Context(), id); err != nil {
		ah.Logger.Error("DeleteService: failed to delete record", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service", "message": err.Error()})
		return
	}

	ah.publishChange(c, "", "service_deleted")
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadPackageImage handles POST /api/admin/services/images. The uploaded
// file lands in Cloudinary and the secure URL comes back for use as a
// record's packageImage.
func (ah *AdminHandler) UploadPackageImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "message": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		ah.Logger.Error("UploadPackageImage: failed to save temp file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload", "message": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := ah.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, "catalog/packages")
	if err != nil {
		ah.Logger.Error("UploadPackageImage: cloudinary upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "message": err.Error()})
		return
	}

	url, err := ah.StorageSvc.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		ah.Logger.Error("UploadPackageImage: failed to resolve image URL", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve image URL", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}

// DeletePackageImage handles DELETE /api/admin/images/*publicId.
// Cloudinary public IDs contain slashes, so the route captures the rest of
// the path.
func (ah *AdminHandler) DeletePackageImage(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId not provided"})
		return
	}

	if err := ah.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		ah.Logger.Error("DeletePackageImage: cloudinary delete failed", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateCoupon handles POST /api/admin/coupons.
func (ah *AdminHandler) CreateCoupon(c *gin.Context) {
	var cpn models.Coupon
	if err := c.ShouldBindJSON(&cpn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := ah.CouponSvc.Create(c.Request.Context(), cpn); err != nil {
		ah.Logger.Error("CreateCoupon: failed to create coupon", zap.String("code", cpn.Code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create coupon", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cpn)
}

// DeleteCoupon handles DELETE /api/admin/coupons/:code.
func (ah *AdminHandler) DeleteCoupon(c *gin.Context) {
	code := c.Param("code")
	if err := ah.CouponSvc.Delete(c.Request.Context(), code); err != nil {
		ah.Logger.Error("DeleteCoupon: failed to delete coupon", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete coupon", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
