package service

import (
	"context"
	"errors"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MaestroService interface {
	// Crear provisions the usuario account and the teacher profile atomically.
	// Username is the número de empleado.
	Crear(ctx context.Context, req dto.CrearMaestroRequest) (*dto.MaestroResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MaestroResponse, error)
	Listar(ctx context.Context) ([]dto.MaestroResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaestroRequest) (*dto.MaestroResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// AsignarCursos replaces the set of cursos the teacher is qualified for.
	AsignarCursos(ctx context.Context, id uuid.UUID, cursoIDs []string) (*dto.MaestroResponse, error)
}

type maestroService struct {
	repo        repository.MaestroRepository
	usuarioRepo repository.UsuarioRepository
	cursoRepo   repository.CursoRepository
}

func NewMaestroService(
	repo repository.MaestroRepository,
	usuarioRepo repository.UsuarioRepository,
	cursoRepo repository.CursoRepository,
) MaestroService {
	return &maestroService{repo: repo, usuarioRepo: usuarioRepo, cursoRepo: cursoRepo}
}

func (s *maestroService) Crear(ctx context.Context, req dto.CrearMaestroRequest) (*dto.MaestroResponse, error) {
	fechaContratacion, err := time.Parse("2006-01-02", req.FechaContratacion)
	if err != nil {
		return nil, errors.New("fecha_contratacion inválida, use YYYY-MM-DD")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(PasswordTemporal), 12)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Username:     req.NumeroEmpleado,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          model.RolMaestro,
		Activo:       true,
	}
	maestro := &model.Maestro{
		NumeroEmpleado:    req.NumeroEmpleado,
		Especialidad:      req.Especialidad,
		FechaContratacion: fechaContratacion,
		TelefonoContacto:  req.TelefonoContacto,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.CreateTx(tx, usuario); err != nil {
			return err
		}
		maestro.UsuarioID = usuario.ID
		return s.repo.CreateTx(tx, maestro)
	})
	if txErr != nil {
		return nil, txErr
	}

	maestro.Usuario = usuario
	return maestroToResponse(maestro), nil
}

func (s *maestroService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MaestroResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("maestro no encontrado")
	}
	return maestroToResponse(m), nil
}

func (s *maestroService) Listar(ctx context.Context) ([]dto.MaestroResponse, error) {
	maestros, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaestroResponse, len(maestros))
	for i := range maestros {
		resp[i] = *maestroToResponse(&maestros[i])
	}
	return resp, nil
}

func (s *maestroService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaestroRequest) (*dto.MaestroResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("maestro no encontrado")
	}
	if req.Especialidad != "" {
		m.Especialidad = req.Especialidad
	}
	if req.TelefonoContacto != nil {
		m.TelefonoContacto = req.TelefonoContacto
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return maestroToResponse(m), nil
}

func (s *maestroService) Eliminar(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("maestro no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.usuarioRepo.SoftDelete(ctx, m.UsuarioID)
}

func (s *maestroService) AsignarCursos(ctx context.Context, id uuid.UUID, cursoIDs []string) (*dto.MaestroResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("maestro no encontrado")
	}

	ids := make([]uuid.UUID, 0, len(cursoIDs))
	for _, raw := range cursoIDs {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("curso_id inválido: " + raw)
		}
		ids = append(ids, cid)
	}
	cursos, err := s.cursoRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(cursos) != len(ids) {
		return nil, errors.New("uno o más cursos no existen")
	}

	if err := s.repo.ReplaceCursos(ctx, m, cursos); err != nil {
		return nil, err
	}
	m.Cursos = cursos
	return maestroToResponse(m), nil
}

func maestroToResponse(m *model.Maestro) *dto.MaestroResponse {
	resp := &dto.MaestroResponse{
		ID:                m.ID.String(),
		UsuarioID:         m.UsuarioID.String(),
		NumeroEmpleado:    m.NumeroEmpleado,
		Especialidad:      m.Especialidad,
		FechaContratacion: m.FechaContratacion.Format("2006-01-02"),
		TelefonoContacto:  m.TelefonoContacto,
	}
	if m.Usuario != nil {
		resp.Nombre = m.Usuario.Nombre
		resp.Apellido = m.Usuario.Apellido
		resp.Email = m.Usuario.Email
	}
	for _, c := range m.Cursos {
		resp.Cursos = append(resp.Cursos, dto.CursoResponse{
			ID:          c.ID.String(),
			Nombre:      c.Nombre,
			Descripcion: c.Descripcion,
		})
	}
	return resp
}
