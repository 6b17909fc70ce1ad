package payment

// ServiceInterface is implemented by *Service. The order commit service uses
// it to verify the submitted payment type exists.
type ServiceInterface interface {
	List() ([]PaymentType, error)
	GetByID(id int) (PaymentType, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]PaymentType, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (PaymentType, error) {
	if id <= 0 {
		return PaymentType{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}
