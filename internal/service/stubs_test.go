package service

import (
	"context"
	"errors"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errNotFound = errors.New("not found")

// stubCargoRepo is an in-memory CargoRepository. Pagos live on the cargo, so
// the pago stub appends into the parent's Pagos slice (see stubPagoRepo).
type stubCargoRepo struct {
	cargos map[uuid.UUID]*model.Cargo
}

func newStubCargoRepo() *stubCargoRepo {
	return &stubCargoRepo{cargos: make(map[uuid.UUID]*model.Cargo)}
}

func (r *stubCargoRepo) Create(_ context.Context, c *model.Cargo) error {
	return r.CreateTx(nil, c)
}

func (r *stubCargoRepo) CreateTx(_ *gorm.DB, c *model.Cargo) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cargos[c.ID] = c
	return nil
}

func (r *stubCargoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cargo, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubCargoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Cargo, error) {
	c, ok := r.cargos[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubCargoRepo) ListByEstudiante(_ context.Context, estudianteID uuid.UUID, estado string) ([]model.Cargo, error) {
	var out []model.Cargo
	for _, c := range r.cargos {
		if c.EstudianteID != estudianteID {
			continue
		}
		if estado != "" && estado != "all" && c.Estado != estado {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCargoRepo) ExistsByConceptoTx(_ *gorm.DB, estudianteID uuid.UUID, concepto string) (bool, error) {
	for _, c := range r.cargos {
		if c.EstudianteID == estudianteID && c.Concepto == concepto {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCargoRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	c, ok := r.cargos[id]
	if !ok {
		return errNotFound
	}
	c.Estado = estado
	return nil
}

func (r *stubCargoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cargos, id)
	return nil
}

func (r *stubCargoRepo) CountPagos(_ context.Context, cargoID uuid.UUID) (int64, error) {
	c, ok := r.cargos[cargoID]
	if !ok {
		return 0, errNotFound
	}
	return int64(len(c.Pagos)), nil
}

func (r *stubCargoRepo) DB() *gorm.DB { return nil }

var _ repository.CargoRepository = (*stubCargoRepo)(nil)

// stubPagoRepo keeps pagos both in its own index and on the parent cargo, so
// Cargo.Saldo() sees them the way a Preload("Pagos") would.
type stubPagoRepo struct {
	pagos  map[uuid.UUID]*model.Pago
	cargos *stubCargoRepo
}

func newStubPagoRepo(cargos *stubCargoRepo) *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uuid.UUID]*model.Pago), cargos: cargos}
}

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos[p.ID] = p
	if c, ok := r.cargos.cargos[p.CargoID]; ok {
		c.Pagos = append(c.Pagos, *p)
	}
	return nil
}

func (r *stubPagoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPagoRepo) ListByCargo(_ context.Context, cargoID uuid.UUID) ([]model.Pago, error) {
	var out []model.Pago
	for _, p := range r.pagos {
		if p.CargoID == cargoID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPagoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	p, ok := r.pagos[id]
	if !ok {
		return errNotFound
	}
	delete(r.pagos, id)
	if c, ok := r.cargos.cargos[p.CargoID]; ok {
		kept := c.Pagos[:0]
		for _, cp := range c.Pagos {
			if cp.ID != id {
				kept = append(kept, cp)
			}
		}
		c.Pagos = kept
	}
	return nil
}

func (r *stubPagoRepo) DB() *gorm.DB { return nil }

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

// stubEstudianteRepo preserves insertion order for FindFirstByTutor.
type stubEstudianteRepo struct {
	orden       []uuid.UUID
	estudiantes map[uuid.UUID]*model.Estudiante
}

func newStubEstudianteRepo() *stubEstudianteRepo {
	return &stubEstudianteRepo{estudiantes: make(map[uuid.UUID]*model.Estudiante)}
}

func (r *stubEstudianteRepo) CreateTx(_ *gorm.DB, e *model.Estudiante) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.orden = append(r.orden, e.ID)
	r.estudiantes[e.ID] = e
	return nil
}

func (r *stubEstudianteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Estudiante, error) {
	e, ok := r.estudiantes[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubEstudianteRepo) FindByUsuarioID(_ context.Context, usuarioID uuid.UUID) (*model.Estudiante, error) {
	for _, id := range r.orden {
		if r.estudiantes[id].UsuarioID == usuarioID {
			return r.estudiantes[id], nil
		}
	}
	return nil, errNotFound
}

func (r *stubEstudianteRepo) FindFirstByTutor(_ context.Context, tutorID uuid.UUID) (*model.Estudiante, error) {
	for _, id := range r.orden {
		e := r.estudiantes[id]
		if e.TutorID != nil && *e.TutorID == tutorID {
			return e, nil
		}
	}
	return nil, errNotFound
}

func (r *stubEstudianteRepo) List(_ context.Context) ([]model.Estudiante, error) {
	out := make([]model.Estudiante, 0, len(r.orden))
	for _, id := range r.orden {
		out = append(out, *r.estudiantes[id])
	}
	return out, nil
}

func (r *stubEstudianteRepo) Update(_ context.Context, e *model.Estudiante) error {
	r.estudiantes[e.ID] = e
	return nil
}

func (r *stubEstudianteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.estudiantes, id)
	return nil
}

func (r *stubEstudianteRepo) SetGradoTx(_ *gorm.DB, estudianteID uuid.UUID, gradoID uuid.UUID) error {
	e, ok := r.estudiantes[estudianteID]
	if !ok {
		return errNotFound
	}
	g := gradoID
	e.GradoID = &g
	return nil
}

func (r *stubEstudianteRepo) ReplaceClasesTx(_ *gorm.DB, e *model.Estudiante, clases []model.Clase) error {
	e.Clases = clases
	return nil
}

func (r *stubEstudianteRepo) DB() *gorm.DB { return nil }

var _ repository.EstudianteRepository = (*stubEstudianteRepo)(nil)

type stubGradoRepo struct {
	grados map[uuid.UUID]*model.Grado
}

func newStubGradoRepo() *stubGradoRepo {
	return &stubGradoRepo{grados: make(map[uuid.UUID]*model.Grado)}
}

func (r *stubGradoRepo) Create(_ context.Context, g *model.Grado) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.grados[g.ID] = g
	return nil
}

func (r *stubGradoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Grado, error) {
	g, ok := r.grados[id]
	if !ok {
		return nil, errNotFound
	}
	return g, nil
}

func (r *stubGradoRepo) List(_ context.Context) ([]model.Grado, error) {
	out := make([]model.Grado, 0, len(r.grados))
	for _, g := range r.grados {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGradoRepo) Update(_ context.Context, g *model.Grado) error {
	r.grados[g.ID] = g
	return nil
}

func (r *stubGradoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.grados, id)
	return nil
}

func (r *stubGradoRepo) ReplaceClases(_ context.Context, g *model.Grado, clases []model.Clase) error {
	g.Clases = clases
	return nil
}

var _ repository.GradoRepository = (*stubGradoRepo)(nil)

type stubPeriodoRepo struct {
	periodos map[uuid.UUID]*model.PeriodoAcademico
}

func newStubPeriodoRepo() *stubPeriodoRepo {
	return &stubPeriodoRepo{periodos: make(map[uuid.UUID]*model.PeriodoAcademico)}
}

func (r *stubPeriodoRepo) Create(_ context.Context, p *model.PeriodoAcademico) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.periodos[p.ID] = p
	return nil
}

func (r *stubPeriodoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PeriodoAcademico, error) {
	p, ok := r.periodos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPeriodoRepo) FindMasReciente(_ context.Context) (*model.PeriodoAcademico, error) {
	var reciente *model.PeriodoAcademico
	for _, p := range r.periodos {
		if reciente == nil || p.FechaInicio.After(reciente.FechaInicio) {
			reciente = p
		}
	}
	if reciente == nil {
		return nil, errNotFound
	}
	return reciente, nil
}

func (r *stubPeriodoRepo) List(_ context.Context) ([]model.PeriodoAcademico, error) {
	out := make([]model.PeriodoAcademico, 0, len(r.periodos))
	for _, p := range r.periodos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPeriodoRepo) Update(_ context.Context, p *model.PeriodoAcademico) error {
	r.periodos[p.ID] = p
	return nil
}

func (r *stubPeriodoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.periodos, id)
	return nil
}

var _ repository.PeriodoRepository = (*stubPeriodoRepo)(nil)

type stubClaseRepo struct {
	clases map[uuid.UUID]*model.Clase
}

func newStubClaseRepo() *stubClaseRepo {
	return &stubClaseRepo{clases: make(map[uuid.UUID]*model.Clase)}
}

func (r *stubClaseRepo) Create(_ context.Context, c *model.Clase) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clases[c.ID] = c
	return nil
}

func (r *stubClaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Clase, error) {
	c, ok := r.clases[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubClaseRepo) ListByPeriodo(_ context.Context, periodoID uuid.UUID) ([]model.Clase, error) {
	var out []model.Clase
	for _, c := range r.clases {
		if c.PeriodoID == periodoID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClaseRepo) ListByEstudianteYPeriodo(_ context.Context, estudianteID, periodoID uuid.UUID) ([]model.Clase, error) {
	var out []model.Clase
	for _, c := range r.clases {
		if c.PeriodoID != periodoID {
			continue
		}
		for _, e := range c.Estudiantes {
			if e.ID == estudianteID {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (r *stubClaseRepo) ListByMaestroYPeriodo(_ context.Context, maestroID, periodoID uuid.UUID) ([]model.Clase, error) {
	var out []model.Clase
	for _, c := range r.clases {
		if c.PeriodoID == periodoID && c.MaestroID != nil && *c.MaestroID == maestroID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClaseRepo) Update(_ context.Context, c *model.Clase) error {
	r.clases[c.ID] = c
	return nil
}

func (r *stubClaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clases, id)
	return nil
}

func (r *stubClaseRepo) ReplaceEstudiantes(_ context.Context, c *model.Clase, estudiantes []model.Estudiante) error {
	c.Estudiantes = estudiantes
	return nil
}

var _ repository.ClaseRepository = (*stubClaseRepo)(nil)
