package service

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
)

type StudentService interface {
	CreateStudent(req dto.CreateStudentRequest) (*dto.StudentResponse, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &model.Student{}
	if err := copier.Copy(student, &req); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(student); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, apperror.NewIntegrity("a student with this email already exists")
		}
		return nil, err
	}

	log.Info().Uint("studentID", student.ID).Str("email", student.Email).Msg("Student registered")

	response := &dto.StudentResponse{}
	if err := copier.Copy(response, student); err != nil {
		return nil, err
	}
	return response, nil
}
