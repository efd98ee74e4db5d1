package fleet

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) getPart(id uint) (*models.Part, error) {
	var part models.Part
	if err := f.Db.Conn.First(&part, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &part, nil
}

func (f *Fleet) getPartByReference(reference string) (*models.Part, error) {
	var part models.Part
	if err := f.Db.Conn.First(&part, "reference = ?", reference).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &part, nil
}

func (f *Fleet) listParts(search string, limit, offset int) ([]models.Part, int64, error) {
	query := f.Db.Conn.Model(&models.Part{})

	if search != "" {
		likeSearch := "%" + search + "%"
		query = query.Where(
			"name LIKE ? OR reference LIKE ? OR description LIKE ?",
			likeSearch, likeSearch, likeSearch,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var parts []models.Part
	err := query.
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&parts).Error
	return parts, total, err
}

func (f *Fleet) listPartsLowOnStock() ([]models.Part, error) {
	var parts []models.Part
	err := f.Db.Conn.
		Where("quantity <= min_quantity").
		Order("quantity").
		Find(&parts).Error
	return parts, err
}

func (f *Fleet) createPart(input *models.Part) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetInventory),
	)

	if _, err := f.getPartByReference(input.Reference); err == nil {
		return ErrDuplicate
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Part created", zap.Reflect("part", input))
	return nil
}

func (f *Fleet) updatePart(id uint, updates map[string]any) (*models.Part, error) {
	part, err := f.getPart(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := f.Db.Conn.Model(part).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return f.getPart(id)
}

func (f *Fleet) deletePart(id uint) error {
	if _, err := f.getPart(id); err != nil {
		return err
	}
	return f.Db.Conn.Delete(&models.Part{}, id).Error
}

func (f *Fleet) partsUsedForWorkOrder(workOrderID uint) ([]models.PartUsed, error) {
	var used []models.PartUsed
	err := f.Db.Conn.
		Where("work_order_id = ?", workOrderID).
		Find(&used).Error
	return used, err
}

// attachPart consumes stock for a work order. The PartUsed insert and the
// ledger decrement commit in one transaction. UnitPrice is snapshotted here.
// The ledger may go negative; nothing clamps the quantity.
func (f *Fleet) attachPart(workOrderID, partID uint, quantity int, unitPrice float64) (*models.PartUsed, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetInventory),
	)

	order, err := f.getWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}
	if order.Status.IsClosed() {
		return nil, ErrWorkOrderClosed
	}

	if _, err := f.getPart(partID); err != nil {
		return nil, err
	}

	used := models.PartUsed{
		WorkOrderID: workOrderID,
		PartID:      partID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}

	err = f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&used).Error; err != nil {
			return err
		}
		return tx.Model(&models.Part{}).
			Where("id = ?", partID).
			Update("quantity", gorm.Expr("quantity - ?", quantity)).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Part attached to work order", zap.Reflect("part_used", used))

	f.notifyIfLowStock(partID, logger)

	return &used, nil
}

// updatePartUsed re-balances the ledger by the quantity delta while keeping
// the snapshotted unit price untouched.
func (f *Fleet) updatePartUsed(partUsedID uint, quantity int) (*models.PartUsed, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetInventory),
	)

	var used models.PartUsed
	if err := f.Db.Conn.First(&used, partUsedID).Error; err != nil {
		return nil, wrapNotFound(err)
	}

	diff := used.Quantity - quantity

	err := f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&used).Update("quantity", quantity).Error; err != nil {
			return err
		}
		if diff == 0 {
			return nil
		}
		return tx.Model(&models.Part{}).
			Where("id = ?", used.PartID).
			Update("quantity", gorm.Expr("quantity + ?", diff)).Error
	})
	if err != nil {
		return nil, err
	}

	if diff != 0 {
		f.notifyIfLowStock(used.PartID, logger)
	}

	return &used, nil
}

// detachPart returns stock to the ledger and removes the usage row. A
// missing row is a silent success so the delete endpoint stays idempotent.
func (f *Fleet) detachPart(partUsedID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetInventory),
	)

	var used models.PartUsed
	if err := f.Db.Conn.First(&used, partUsedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	err := f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Part{}).
			Where("id = ?", used.PartID).
			Update("quantity", gorm.Expr("quantity + ?", used.Quantity)).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.PartUsed{}, partUsedID).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Part detached from work order", zap.Reflect("part_used", used))
	return nil
}

func (f *Fleet) adjustStock(partID uint, delta int) (*models.Part, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetInventory),
	)

	if _, err := f.getPart(partID); err != nil {
		return nil, err
	}

	err := f.Db.Conn.Model(&models.Part{}).
		Where("id = ?", partID).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
	if err != nil {
		return nil, err
	}

	part, err := f.getPart(partID)
	if err != nil {
		return nil, err
	}

	logger.Info("Stock adjusted",
		zap.Uint("part_id", partID),
		zap.Int("delta", delta),
		zap.Int("quantity", part.Quantity))

	if err := f.Alert.CheckAndStoreLowStockAlert(part); err != nil {
		logger.Warn("Low stock alert check failed", zap.Error(err))
	}

	return part, nil
}

// notifyIfLowStock reloads the part and runs the threshold check. Alerting is
// best effort after a committed ledger change, so failures are only logged.
func (f *Fleet) notifyIfLowStock(partID uint, logger *zap.Logger) {
	part, err := f.getPart(partID)
	if err != nil {
		logger.Warn("Low stock alert check skipped", zap.Uint("part_id", partID), zap.Error(err))
		return
	}
	if err := f.Alert.CheckAndStoreLowStockAlert(part); err != nil {
		logger.Warn("Low stock alert check failed", zap.Error(err))
	}
}

type IInventoryImpl struct {
	fleet *Fleet
}

func (ii *IInventoryImpl) GetPart(id uint) (*models.Part, error) {
	return ii.fleet.getPart(id)
}

func (ii *IInventoryImpl) GetPartByReference(reference string) (*models.Part, error) {
	return ii.fleet.getPartByReference(reference)
}

func (ii *IInventoryImpl) ListParts(search string, limit, offset int) ([]models.Part, int64, error) {
	return ii.fleet.listParts(search, limit, offset)
}

func (ii *IInventoryImpl) ListPartsLowOnStock() ([]models.Part, error) {
	return ii.fleet.listPartsLowOnStock()
}

func (ii *IInventoryImpl) CreatePart(input *models.Part) error {
	return ii.fleet.createPart(input)
}

func (ii *IInventoryImpl) UpdatePart(id uint, updates map[string]any) (*models.Part, error) {
	return ii.fleet.updatePart(id, updates)
}

func (ii *IInventoryImpl) DeletePart(id uint) error {
	return ii.fleet.deletePart(id)
}

func (ii *IInventoryImpl) PartsUsedForWorkOrder(workOrderID uint) ([]models.PartUsed, error) {
	return ii.fleet.partsUsedForWorkOrder(workOrderID)
}

func (ii *IInventoryImpl) AttachPart(workOrderID, partID uint, quantity int, unitPrice float64) (*models.PartUsed, error) {
	return ii.fleet.attachPart(workOrderID, partID, quantity, unitPrice)
}

func (ii *IInventoryImpl) UpdatePartUsed(partUsedID uint, quantity int) (*models.PartUsed, error) {
	return ii.fleet.updatePartUsed(partUsedID, quantity)
}

func (ii *IInventoryImpl) DetachPart(partUsedID uint) error {
	return ii.fleet.detachPart(partUsedID)
}

func (ii *IInventoryImpl) AdjustStock(partID uint, delta int) (*models.Part, error) {
	return ii.fleet.adjustStock(partID, delta)
}

func (f *Fleet) GetIInventory() IInventory {
	return &IInventoryImpl{fleet: f}
}
