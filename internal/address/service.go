package address

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.List(userID)
}

func (s *Service) Create(addr Address) (Address, error) {
	if addr.UserID <= 0 || addr.Line == "" {
		return Address{}, ErrNotFound
	}
	return s.repo.Create(addr)
}

func (s *Service) Delete(userID, addressID int) error {
	if userID <= 0 || addressID <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(userID, addressID)
}
