package sync

import (
	"context"
	"time"
)

// Task names used by the scheduler and the ops API
const (
	TaskNameExportOrders    = "sync.export_orders"
	TaskNameImportShipments = "sync.import_shipments"
)

// ExportOrdersTask adapts the order exporter to the scheduler's task shape
type ExportOrdersTask struct {
	exporter *OrderExporter
	interval time.Duration
}

// NewExportOrdersTask creates the periodic order export task
func NewExportOrdersTask(exporter *OrderExporter, interval time.Duration) *ExportOrdersTask {
	return &ExportOrdersTask{exporter: exporter, interval: interval}
}

// Name returns the task name
func (t *ExportOrdersTask) Name() string { return TaskNameExportOrders }

// Interval returns how often the task runs
func (t *ExportOrdersTask) Interval() time.Duration { return t.interval }

// Run executes one export pass
func (t *ExportOrdersTask) Run(ctx context.Context) error {
	return t.exporter.ExportEligibleOrders(ctx)
}

// ImportShipmentsTask adapts the shipment importer to the scheduler's task shape
type ImportShipmentsTask struct {
	importer *ShipmentImporter
	interval time.Duration
}

// NewImportShipmentsTask creates the periodic shipment import task
func NewImportShipmentsTask(importer *ShipmentImporter, interval time.Duration) *ImportShipmentsTask {
	return &ImportShipmentsTask{importer: importer, interval: interval}
}

// Name returns the task name
func (t *ImportShipmentsTask) Name() string { return TaskNameImportShipments }

// Interval returns how often the task runs
func (t *ImportShipmentsTask) Interval() time.Duration { return t.interval }

// Run executes one import pass
func (t *ImportShipmentsTask) Run(ctx context.Context) error {
	return t.importer.ImportShipments(ctx)
}
