// Package mockapi is an in-memory stand-in for the storefront backend's
// admin surface. It exists so the console can be developed and
// integration-tested without the real collaborator; it deliberately
// mirrors the production API's mix of response envelopes.
package mockapi

import (
	"errors"
	"sync"

	"wholesale-admin/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrSlugTaken    = errors.New("slug already used by a sibling category")
	ErrHasChildren  = errors.New("category still has subcategories")
	ErrBadPassword  = errors.New("invalid email or password")
	ErrDuplicateSKU = errors.New("sku already exists")
)

// account is a seeded login with a bcrypt-hashed password.
type account struct {
	User         domain.User
	PasswordHash []byte
}

// Store holds all mock data. Unlike the console's own state, the store is
// hit by concurrent HTTP handlers and locks around every access.
type Store struct {
	mu         sync.Mutex
	accounts   map[string]*account
	categories []domain.Category
	products   []domain.Product
	orders     []domain.Order
}

// NewStore seeds a store with an admin login (admin@example.com /
// "wholesale"), a regular customer, a small category forest, two
// products and one order.
func NewStore() *Store {
	s := &Store{accounts: make(map[string]*account)}

	s.seedAccount("admin@example.com", "wholesale", domain.User{
		ID: uuid.NewString(), Name: "Store Admin", Role: domain.RoleAdmin, Status: "active",
	})
	s.seedAccount("customer@example.com", "wholesale", domain.User{
		ID: uuid.NewString(), Name: "Regular Customer", Role: "customer", Status: "active",
	})

	produce := domain.Category{ID: uuid.NewString(), Name: "Produce", Slug: "produce"}
	fruit := domain.Category{ID: uuid.NewString(), Name: "Fruit", Slug: "fruit", Parent: domain.ParentRef(produce.ID)}
	citrus := domain.Category{ID: uuid.NewString(), Name: "Citrus", Slug: "citrus", Parent: domain.ParentRef(fruit.ID)}
	pantry := domain.Category{ID: uuid.NewString(), Name: "Pantry", Slug: "pantry"}
	s.categories = []domain.Category{produce, fruit, citrus, pantry}

	s.products = []domain.Product{
		{
			ID: uuid.NewString(), SKU: "ORA-001", Slug: "valencia-oranges", Name: "Valencia Oranges",
			Brand: "SunFarm", BasePrice: decimal.NewFromFloat(12.50), PrimaryCategory: citrus.ID,
			PackOptions: []domain.PackOption{{Unit: "5 kg box", Quantity: 5, Price: decimal.NewFromFloat(12.50)}},
			Stock:       domain.Stock{Level: 120, Status: domain.StockInStock},
			IsActive:    true,
		},
		{
			ID: uuid.NewString(), SKU: "RIC-014", Slug: "basmati-rice", Name: "Basmati Rice",
			BasePrice: decimal.NewFromFloat(28), PrimaryCategory: pantry.ID,
			PackOptions: []domain.PackOption{{Unit: "10 kg sack", Quantity: 10, Price: decimal.NewFromFloat(28)}},
			Stock:       domain.Stock{Level: 4, Status: domain.StockLowStock},
			IsActive:    true, IsFeatured: true,
		},
	}

	s.orders = []domain.Order{
		{
			ID: uuid.NewString(), OrderID: "WS-1001",
			CustomerInfo: domain.CustomerInfo{Name: "Regular Customer", Email: "customer@example.com", Company: "Corner Deli"},
			Items:        []domain.OrderItem{{SKU: "ORA-001", Quantity: 2, Pack: "5 kg box"}},
			OrderTotal:   decimal.NewFromFloat(25),
			Status:       domain.OrderPending,
		},
	}

	return s
}

func (s *Store) seedAccount(email, password string, user domain.User) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	user.Email = email
	s.accounts[email] = &account{User: user, PasswordHash: hash}
}

// Authenticate checks credentials and returns the account's user.
func (s *Store) Authenticate(email, password string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[email]
	if !ok {
		return domain.User{}, ErrBadPassword
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)); err != nil {
		return domain.User{}, ErrBadPassword
	}
	return acct.User, nil
}

// UserByID returns the account behind a session subject.
func (s *Store) UserByID(id string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if acct.User.ID == id {
			return acct.User, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// Categories returns the flat category list.
func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Category(nil), s.categories...)
}

// CreateCategory validates sibling slug uniqueness and appends.
func (s *Store) CreateCategory(in domain.CategoryInput) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(in.Slug, in.Parent, "") {
		return domain.Category{}, ErrSlugTaken
	}
	category := domain.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Parent:      domain.ParentRef(in.Parent),
	}
	s.categories = append(s.categories, category)
	return category, nil
}

// UpdateCategory edits a category in place by id.
func (s *Store) UpdateCategory(id string, in domain.CategoryInput) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if s.slugTaken(in.Slug, in.Parent, id) {
			return domain.Category{}, ErrSlugTaken
		}
		s.categories[i] = domain.Category{
			ID:          id,
			Name:        in.Name,
			Slug:        in.Slug,
			Description: in.Description,
			Parent:      domain.ParentRef(in.Parent),
		}
		return s.categories[i], nil
	}
	return domain.Category{}, ErrNotFound
}

// DeleteCategory refuses to delete a category that still has children;
// cascade semantics live on the server side of the contract, not in the
// console.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Parent.String() == id {
			return ErrHasChildren
		}
	}
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) slugTaken(slug, parent, excludeID string) bool {
	for _, c := range s.categories {
		if c.ID != excludeID && c.Slug == slug && c.Parent.String() == parent {
			return true
		}
	}
	return false
}

// Products returns the product list.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// CreateProduct enforces SKU uniqueness and prepends the new record.
func (s *Store) CreateProduct(in domain.ProductInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.SKU == in.SKU {
			return domain.Product{}, ErrDuplicateSKU
		}
	}
	product := productFromInput(uuid.NewString(), in)
	s.products = append([]domain.Product{product}, s.products...)
	return product, nil
}

// UpdateProduct replaces a product by id.
func (s *Store) UpdateProduct(id string, in domain.ProductInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = productFromInput(id, in)
			return s.products[i], nil
		}
	}
	return domain.Product{}, ErrNotFound
}

// DeleteProduct removes a product by id.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func productFromInput(id string, in domain.ProductInput) domain.Product {
	return domain.Product{
		ID:               id,
		SKU:              in.SKU,
		Slug:             in.Slug,
		Name:             in.Name,
		Brand:            in.Brand,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		BasePrice:        in.BasePrice,
		PrimaryCategory:  in.PrimaryCategory,
		PackOptions:      in.PackOptions,
		Images:           in.Images,
		Stock:            in.Stock,
		IsFeatured:       in.IsFeatured,
		IsActive:         in.IsActive,
		MetaTitle:        in.MetaTitle,
		MetaDescription:  in.MetaDescription,
	}
}

// Orders returns the order list.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

// UpdateOrderStatus sets status and notes on an order by id.
func (s *Store) UpdateOrderStatus(id, status, notes string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			if notes != "" {
				s.orders[i].Notes = notes
			}
			return s.orders[i], nil
		}
	}
	return domain.Order{}, ErrNotFound
}

// DeleteOrder removes an order by id.
func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Users returns every account's user record.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, 0, len(s.accounts))
	for _, acct := range s.accounts {
		users = append(users, acct.User)
	}
	return users
}

// UpdateUserStatus sets an account's status by id.
func (s *Store) UpdateUserStatus(id, status string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if acct.User.ID == id {
			acct.User.Status = status
			return acct.User, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// DeleteUser removes an account by id.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for email, acct := range s.accounts {
		if acct.User.ID == id {
			delete(s.accounts, email)
			return nil
		}
	}
	return ErrNotFound
}
