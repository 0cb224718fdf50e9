package dto

import "github.com/hireloop/job-board-api/internal/models"

// DepartmentDTO represents a department in API responses
type DepartmentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToDepartmentDTO converts a Department model to DepartmentDTO
func ToDepartmentDTO(department models.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:   department.ID,
		Name: department.Name,
	}
}

// ToDepartmentDTOs converts a slice of departments
func ToDepartmentDTOs(departments []models.Department) []DepartmentDTO {
	dtos := make([]DepartmentDTO, len(departments))
	for i, department := range departments {
		dtos[i] = ToDepartmentDTO(department)
	}
	return dtos
}
