package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/fogonlabs/comanda/pkg/printer"
	"github.com/google/uuid"
)

// PrinterService handles receipt and kitchen ticket formatting plus the
// till hardware signals.
type PrinterService struct {
	printer      printer.Printer
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	printerType  string
	width        int
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
	width int,
) *PrinterService {
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printer:      p,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
		width:        width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Text(time.Now().Format("2006-01-02 15:04")).
		FeedLines(3).
		PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// KickDrawer pops the cash drawer without printing anything
func (s *PrinterService) KickDrawer() error {
	doc := printer.NewDocument(s.width)
	doc.DrawerKick()
	return s.printer.Print(doc.Bytes())
}

// PrintOrderReceipt fetches an order and prints the customer receipt
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &entity.RestaurantSettings{Name: "Restaurant"}
	}

	data := FormatReceipt(order, settings, s.width)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// PrintKitchenTicket prints the lines newly sent to the kitchen
func (s *PrinterService) PrintKitchenTicket(ctx context.Context, order *entity.Order, lines []entity.TicketLine) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	header := "KITCHEN"
	if settings != nil && settings.KitchenHeader != "" {
		header = settings.KitchenHeader
	}

	data := FormatKitchenTicket(order, lines, header, s.width)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (kitchen ticket, order %s): %v", order.ID, err)
		return fmt.Errorf("failed to print kitchen ticket: %w", err)
	}
	return nil
}

// FormatReceipt converts a settled or in-progress order into ESC/POS bytes
func FormatReceipt(order *entity.Order, settings *entity.RestaurantSettings, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(settings.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if settings.Address != "" {
		doc.Text(settings.Address)
	}
	if settings.Phone != "" {
		doc.Text(settings.Phone)
	}
	if settings.TaxID != "" {
		doc.TextF("Tax ID: %s", settings.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Order info
	doc.KeyValue("Order:", fmt.Sprintf("#%d", order.OrderNumber)).
		KeyValue("Table:", fmt.Sprintf("%d", order.TableID)).
		KeyValue("Waiter:", order.WaiterName).
		KeyValue("Date:", order.CreatedAt.Format("2006-01-02 15:04"))

	if order.Customer != nil && !order.Customer.IsWalkIn {
		doc.KeyValue("Customer:", order.Customer.Name)
	}

	doc.Separator('-')

	// Items
	for _, item := range order.Items {
		total := float64(item.Price*int64(item.Quantity)) / 100
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", float64(item.Price)/100)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", float64(order.SubTotal)/100))
	if order.DiscountAmount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", float64(order.DiscountAmount)/100))
	}
	if order.Tax > 0 {
		doc.KeyValue("Tax:", fmt.Sprintf("%.2f", float64(order.Tax)/100))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", float64(order.Total)/100)).
		SetBold(false)

	// Payment breakdown
	if len(order.Payments) > 0 {
		doc.Separator('-')
		for _, p := range order.Payments {
			doc.KeyValue(p.Method.String()+":", fmt.Sprintf("%.2f", float64(p.Amount)/100))
		}
	}
	if due := order.Due(); due > 0 {
		doc.KeyValue("Due:", fmt.Sprintf("%.2f", float64(due)/100))
	}

	doc.Separator('-')

	// Footer
	footer := settings.ReceiptFooter
	if footer == "" {
		footer = "Thank you for your visit!"
	}
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(footer).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatKitchenTicket converts the new-items delta into ESC/POS bytes.
// Kitchen tickets carry no prices, just what to cook and where it goes.
func FormatKitchenTicket(order *entity.Order, lines []entity.TicketLine, header string, width int) []byte {
	doc := printer.NewDocument(width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(header).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Order:", fmt.Sprintf("#%d", order.OrderNumber)).
		SetBold(true).
		SetFontSize(printer.FontTall).
		TextF("TABLE %d", order.TableID).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		KeyValue("Waiter:", order.WaiterName).
		KeyValue("Time:", time.Now().Format("15:04")).
		Separator('=')

	doc.SetFontSize(printer.FontTall)
	for _, line := range lines {
		doc.TextF("%dx %s", line.Quantity, line.Name)
	}
	doc.SetFontSize(printer.FontNormal)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
