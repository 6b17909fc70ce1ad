package catalog

// ServiceInterface is implemented by *Service. The order commit service
// depends on it for server-side price and limit verification.
type ServiceInterface interface {
	ListBaskets() ([]Basket, error)
	GetBasket(id int) (Basket, error)
	ListContents(basketID int) ([]Content, error)
	ListCandies() ([]Candy, error)
	GetCandy(id int) (Candy, error)
	ListCandiesByIDs(ids []int) ([]Candy, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBaskets() ([]Basket, error) {
	return s.repo.ListBaskets()
}

func (s *Service) GetBasket(id int) (Basket, error) {
	if id <= 0 {
		return Basket{}, ErrNotFound
	}
	return s.repo.GetBasket(id)
}

func (s *Service) ListContents(basketID int) ([]Content, error) {
	if basketID <= 0 {
		return nil, ErrNotFound
	}
	if _, err := s.repo.GetBasket(basketID); err != nil {
		return nil, err
	}
	return s.repo.ListContents(basketID)
}

func (s *Service) ListCandies() ([]Candy, error) {
	return s.repo.ListCandies()
}

func (s *Service) GetCandy(id int) (Candy, error) {
	if id <= 0 {
		return Candy{}, ErrNotFound
	}
	return s.repo.GetCandy(id)
}

func (s *Service) ListCandiesByIDs(ids []int) ([]Candy, error) {
	return s.repo.ListCandiesByIDs(ids)
}
