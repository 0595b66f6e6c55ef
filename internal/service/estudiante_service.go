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

// PasswordTemporal is the initial password for auto-provisioned accounts.
// The student (or their tutor) is expected to change it on first login.
const PasswordTemporal = "passwordtemporal123"

type EstudianteService interface {
	// Crear provisions the usuario account and the student profile atomically.
	// Username is the matrícula. When grado_id is present the student is also
	// enrolled (roster + charges) inside the same transaction.
	Crear(ctx context.Context, req dto.CrearEstudianteRequest) (*dto.EstudianteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EstudianteResponse, error)
	Listar(ctx context.Context) ([]dto.EstudianteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEstudianteRequest) (*dto.EstudianteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type estudianteService struct {
	repo        repository.EstudianteRepository
	usuarioRepo repository.UsuarioRepository
	gradoRepo   repository.GradoRepository
	inscripcion InscripcionService
}

func NewEstudianteService(
	repo repository.EstudianteRepository,
	usuarioRepo repository.UsuarioRepository,
	gradoRepo repository.GradoRepository,
	inscripcion InscripcionService,
) EstudianteService {
	return &estudianteService{
		repo:        repo,
		usuarioRepo: usuarioRepo,
		gradoRepo:   gradoRepo,
		inscripcion: inscripcion,
	}
}

func (s *estudianteService) Crear(ctx context.Context, req dto.CrearEstudianteRequest) (*dto.EstudianteResponse, error) {
	fechaNacimiento, err := time.Parse("2006-01-02", req.FechaNacimiento)
	if err != nil {
		return nil, errors.New("fecha_nacimiento inválida, use YYYY-MM-DD")
	}

	var tutorID *uuid.UUID
	if req.TutorID != nil {
		tid, err := uuid.Parse(*req.TutorID)
		if err != nil {
			return nil, errors.New("tutor_id inválido")
		}
		tutor, err := s.usuarioRepo.FindByID(ctx, tid)
		if err != nil || tutor.Rol != model.RolPadre {
			return nil, errors.New("tutor no encontrado o sin rol padre")
		}
		tutorID = &tid
	}

	var grado *model.Grado
	if req.GradoID != nil {
		gid, err := uuid.Parse(*req.GradoID)
		if err != nil {
			return nil, errors.New("grado_id inválido")
		}
		grado, err = s.gradoRepo.FindByID(ctx, gid)
		if err != nil {
			return nil, errors.New("grado no encontrado")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(PasswordTemporal), 12)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Username:     req.Matricula,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          model.RolEstudiante,
		Activo:       true,
	}
	estudiante := &model.Estudiante{
		Matricula:       req.Matricula,
		FechaNacimiento: fechaNacimiento,
		TutorID:         tutorID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.CreateTx(tx, usuario); err != nil {
			return err
		}
		estudiante.UsuarioID = usuario.ID
		if err := s.repo.CreateTx(tx, estudiante); err != nil {
			return err
		}
		if grado != nil {
			_, err := s.inscripcion.InscribirTx(tx, estudiante, grado)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	estudiante.Usuario = usuario
	estudiante.Grado = grado
	return estudianteToResponse(estudiante), nil
}

func (s *estudianteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EstudianteResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("estudiante no encontrado")
	}
	return estudianteToResponse(e), nil
}

func (s *estudianteService) Listar(ctx context.Context) ([]dto.EstudianteResponse, error) {
	estudiantes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EstudianteResponse, len(estudiantes))
	for i := range estudiantes {
		resp[i] = *estudianteToResponse(&estudiantes[i])
	}
	return resp, nil
}

func (s *estudianteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEstudianteRequest) (*dto.EstudianteResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("estudiante no encontrado")
	}
	if req.FechaNacimiento != "" {
		fn, err := time.Parse("2006-01-02", req.FechaNacimiento)
		if err != nil {
			return nil, errors.New("fecha_nacimiento inválida, use YYYY-MM-DD")
		}
		e.FechaNacimiento = fn
	}
	if req.TutorID != nil {
		tid, err := uuid.Parse(*req.TutorID)
		if err != nil {
			return nil, errors.New("tutor_id inválido")
		}
		tutor, err := s.usuarioRepo.FindByID(ctx, tid)
		if err != nil || tutor.Rol != model.RolPadre {
			return nil, errors.New("tutor no encontrado o sin rol padre")
		}
		e.TutorID = &tid
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return estudianteToResponse(e), nil
}

func (s *estudianteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("estudiante no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// The login account is deactivated, not deleted, so the audit trail of
	// cargos and pagos keeps a resolvable author.
	return s.usuarioRepo.SoftDelete(ctx, e.UsuarioID)
}

func estudianteToResponse(e *model.Estudiante) *dto.EstudianteResponse {
	resp := &dto.EstudianteResponse{
		ID:              e.ID.String(),
		UsuarioID:       e.UsuarioID.String(),
		Matricula:       e.Matricula,
		FechaNacimiento: e.FechaNacimiento.Format("2006-01-02"),
	}
	if e.Usuario != nil {
		resp.Nombre = e.Usuario.Nombre
		resp.Apellido = e.Usuario.Apellido
		resp.Email = e.Usuario.Email
	}
	if e.GradoID != nil {
		id := e.GradoID.String()
		resp.GradoID = &id
	}
	if e.Grado != nil {
		gid := e.Grado.ID.String()
		resp.GradoID = &gid
		resp.Grado = &e.Grado.Nombre
	}
	if e.TutorID != nil {
		id := e.TutorID.String()
		resp.TutorID = &id
	}
	return resp
}
