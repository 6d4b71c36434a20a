package checkout

import (
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/mail"
	"strings"

	"github.com/SahakyanGor98/iqos/internal/domain"
	"github.com/SahakyanGor98/iqos/internal/email"
)

// User-facing messages are localized; internal error detail never reaches the
// client.
const (
	msgEmptyCart   = "Корзина пуста"
	msgInvalidForm = "Неверные данные формы"
	msgOrderFailed = "Ошибка при создании заказа"
)

const (
	ordersFrom = "IQOS Orders <onboarding@resend.dev>"
	storeFrom  = "IQOS <onboarding@resend.dev>"
)

type ProductReader interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
}

type OrderWriter interface {
	Create(ctx context.Context, o domain.Order, items []domain.OrderItem) (*domain.Order, error)
}

type Service struct {
	orders        OrderWriter
	products      ProductReader
	mail          email.Sender
	internalEmail string
	logger        *log.Logger
}

// New builds the checkout orchestrator. mail may be nil and internalEmail
// empty; notifications are then skipped.
func New(orders OrderWriter, products ProductReader, mail email.Sender, internalEmail string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		orders:        orders,
		products:      products,
		mail:          mail,
		internalEmail: internalEmail,
		logger:        logger,
	}
}

type CustomerInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// Item carries only identity and quantity; prices and titles are resolved
// from the catalog, never trusted from the client.
type Item struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	OrderID int64  `json:"orderId,omitempty"`
}

type orderLine struct {
	product  domain.Product
	quantity int
}

// PlaceOrder runs the linear checkout flow: validate, compute the total
// server-side, persist header and items in one transaction, then send two
// best-effort notification emails. Success reports persistence only, never
// email delivery.
func (s *Service) PlaceOrder(ctx context.Context, info CustomerInfo, items []Item) Result {
	if !validCustomer(info) {
		return Result{Success: false, Error: msgInvalidForm}
	}
	if len(items) == 0 {
		return Result{Success: false, Error: msgEmptyCart}
	}

	lines, err := s.resolveLines(ctx, items)
	if err != nil {
		s.logger.Printf("checkout: resolve items: %v", err)
		return Result{Success: false, Error: msgOrderFailed}
	}
	if lines == nil {
		return Result{Success: false, Error: msgInvalidForm}
	}

	var total int64
	orderItems := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		total += line.product.Price * int64(line.quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:   line.product.ID,
			Quantity:    line.quantity,
			PriceAtTime: line.product.Price,
		})
	}

	order, err := s.orders.Create(ctx, domain.Order{
		UserName:    strings.TrimSpace(info.FullName),
		UserEmail:   strings.TrimSpace(info.Email),
		UserPhone:   strings.TrimSpace(info.Phone),
		UserMessage: strings.TrimSpace(info.Message),
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
	}, orderItems)
	if err != nil {
		s.logger.Printf("checkout: create order: %v", err)
		return Result{Success: false, Error: msgOrderFailed}
	}

	s.notify(ctx, order, info, lines, total)

	return Result{Success: true, OrderID: order.ID}
}

// resolveLines maps submitted items onto catalog products. It returns
// (nil, nil) when the submission itself is invalid: a non-positive quantity
// or an unknown product id.
func (s *Service) resolveLines(ctx context.Context, items []Item) ([]orderLine, error) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, nil
		}
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]orderLine, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, nil
		}
		lines = append(lines, orderLine{product: p, quantity: item.Quantity})
	}
	return lines, nil
}

func validCustomer(info CustomerInfo) bool {
	if len(strings.TrimSpace(info.FullName)) < 2 {
		return false
	}
	if len(strings.TrimSpace(info.Phone)) < 10 {
		return false
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(info.Email)); err != nil {
		return false
	}
	return true
}

// notify sends the internal and the customer emails. Failures are logged and
// swallowed; the order outcome is already decided.
func (s *Service) notify(ctx context.Context, order *domain.Order, info CustomerInfo, lines []orderLine, total int64) {
	if s.mail == nil || s.internalEmail == "" {
		s.logger.Printf("checkout: email sender or internal address not configured, skipping notifications")
		return
	}

	itemsHTML := itemListHTML(lines)

	internal := email.Message{
		From:    ordersFrom,
		To:      []string{s.internalEmail},
		Subject: fmt.Sprintf("Новый заказ #%d от %s", order.ID, order.UserName),
		HTML: fmt.Sprintf(
			`<h1>Новый заказ!</h1>
<p><strong>Клиент:</strong> %s</p>
<p><strong>Телефон:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Комментарий:</strong> %s</p>
<h2>Товары:</h2>
<ul>%s</ul>
<p><strong>Итого:</strong> %d ₽</p>`,
			html.EscapeString(order.UserName),
			html.EscapeString(order.UserPhone),
			html.EscapeString(order.UserEmail),
			html.EscapeString(orDefault(order.UserMessage, "Нет")),
			itemsHTML,
			total,
		),
	}
	if err := s.mail.Send(ctx, internal); err != nil {
		s.logger.Printf("checkout: internal notification for order %d: %v", order.ID, err)
	}

	confirmation := email.Message{
		From:    storeFrom,
		To:      []string{order.UserEmail},
		Subject: fmt.Sprintf("Подтверждение заказа #%d", order.ID),
		HTML: fmt.Sprintf(
			`<h1>Спасибо за ваш заказ, %s!</h1>
<p>Мы получили ваш заказ и скоро свяжемся с вами для подтверждения.</p>
<h2>Детали заказа:</h2>
<ul>%s</ul>
<p><strong>Сумма:</strong> %d ₽</p>`,
			html.EscapeString(order.UserName),
			itemsHTML,
			total,
		),
	}
	if err := s.mail.Send(ctx, confirmation); err != nil {
		s.logger.Printf("checkout: confirmation for order %d: %v", order.ID, err)
	}
}

func itemListHTML(lines []orderLine) string {
	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "<li>%s x %d - %d ₽</li>",
			html.EscapeString(line.product.Title),
			line.quantity,
			line.product.Price*int64(line.quantity),
		)
	}
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
