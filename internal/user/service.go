package user

// ServiceInterface is implemented by *Service and consumed by handlers in
// other packages.
type ServiceInterface interface {
	GetByID(id int) (User, error)
	Register(user User) (User, error)
	Authenticate(name, phone string) (User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(user User) (User, error) {
	if _, err := s.repo.GetByNameAndPhone(user.Name, user.Phone); err == nil {
		return User{}, ErrDuplicate
	} else if err != ErrNotFound {
		return User{}, err
	}
	return s.repo.Create(user)
}

// Authenticate looks up the exact name+phone pair. The phone is not a
// password and is stored in plain text; hardening this is out of scope.
func (s *Service) Authenticate(name, phone string) (User, error) {
	user, err := s.repo.GetByNameAndPhone(name, phone)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}
