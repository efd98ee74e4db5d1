package fleet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) getAlert(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := f.Db.Conn.First(&alert, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &alert, nil
}

// listUserAlerts returns the user's own alerts plus broadcasts.
func (f *Fleet) listUserAlerts(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := f.Db.Conn.
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

func (f *Fleet) listUnreadUserAlerts(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := f.Db.Conn.
		Where("(user_id = ? OR user_id IS NULL) AND is_read = ?", userID, false).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

func (f *Fleet) createAlert(input *models.Alert) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAlert),
	)

	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Alert saved", zap.Reflect("alert", input))
	return nil
}

func (f *Fleet) markAlertAsRead(id uint) (*models.Alert, error) {
	alert, err := f.getAlert(id)
	if err != nil {
		return nil, err
	}
	if err := f.Db.Conn.Model(alert).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	return f.getAlert(id)
}

func (f *Fleet) deleteAlert(id uint) error {
	if _, err := f.getAlert(id); err != nil {
		return err
	}
	return f.Db.Conn.Delete(&models.Alert{}, id).Error
}

// checkAndStoreLowStockAlert stores a broadcast inventory alert once a part
// falls to or below its minimum quantity. An unread alert already pointing
// at the part suppresses a duplicate.
func (f *Fleet) checkAndStoreLowStockAlert(part *models.Part) error {
	if part.Quantity > part.MinQuantity {
		return nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAlert),
	)

	link := fmt.Sprintf("/inventory/parts/%d", part.ID)

	var existing int64
	err := f.Db.Conn.Model(&models.Alert{}).
		Where("type = ? AND link = ? AND is_read = ?", models.AlertTypeInventory, link, false).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	alert := models.Alert{
		Title:    "Low stock",
		Message:  fmt.Sprintf("Part %s (%s) is down to %d, minimum is %d", part.Name, part.Reference, part.Quantity, part.MinQuantity),
		Type:     models.AlertTypeInventory,
		Priority: models.PriorityHigh,
		Link:     link,
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	if err := f.Db.Conn.Create(&alert).Error; err != nil {
		return err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return nil
}

type IAlertImpl struct {
	fleet *Fleet
}

func (ia *IAlertImpl) GetAlert(id uint) (*models.Alert, error) {
	return ia.fleet.getAlert(id)
}

func (ia *IAlertImpl) ListUserAlerts(userID uint) ([]models.Alert, error) {
	return ia.fleet.listUserAlerts(userID)
}

func (ia *IAlertImpl) ListUnreadUserAlerts(userID uint) ([]models.Alert, error) {
	return ia.fleet.listUnreadUserAlerts(userID)
}

func (ia *IAlertImpl) CreateAlert(input *models.Alert) error {
	return ia.fleet.createAlert(input)
}

func (ia *IAlertImpl) MarkAlertAsRead(id uint) (*models.Alert, error) {
	return ia.fleet.markAlertAsRead(id)
}

func (ia *IAlertImpl) DeleteAlert(id uint) error {
	return ia.fleet.deleteAlert(id)
}

func (ia *IAlertImpl) CheckAndStoreLowStockAlert(part *models.Part) error {
	return ia.fleet.checkAndStoreLowStockAlert(part)
}

func (f *Fleet) GetIAlert() IAlert {
	return &IAlertImpl{fleet: f}
}
