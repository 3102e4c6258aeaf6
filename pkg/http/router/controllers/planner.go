package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/behaviorplanner/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"go.uber.org/zap"
)

type plannerAPI struct {
	plannerService PlannerService
	log            *zap.Logger
}

func New(plannerService PlannerService, log *zap.Logger) *plannerAPI {
	return &plannerAPI{
		plannerService: plannerService,
		log:            log,
	}
}

func (api *plannerAPI) Routes(group *helper.RouteGroup) {
	group.POST("/observations", api.observe)
	group.POST("/costs", api.costs)
	group.GET("/vehicles", api.vehicles)
	group.DELETE("/vehicles/:id", api.removeVehicle)
}

// observe godoc
//
//	@Summary		feed sensor observations to the vehicle trackers
//	@Tags			planner
//	@Accept			json
//	@Produce		json
//	@Param			body	body		observationsRequest	true	"observations"
//	@Success		200		{object}	observationsResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/observations [post]
func (api *plannerAPI) observe(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request observationsRequest
	if err := api.decodeAndValidate(w, r, &request); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	tracked := api.plannerService.Observe(toObservations(request.Observations))

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": observationsResponse{
		Accepted: len(request.Observations),
		Tracked:  tracked,
	}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// costs godoc
//
//	@Summary		cost candidate maneuvers against the tracked vehicles
//	@Description	returns one cost per candidate, the cost breakdowns, the cheapest feasible candidate and its trajectory as an (s, d) polyline
//	@Tags			planner
//	@Accept			json
//	@Produce		json
//	@Param			body	body		costsRequest	true	"ego position and candidates"
//	@Success		200		{object}	costsResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/costs [post]
func (api *plannerAPI) costs(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request costsRequest
	if err := api.decodeAndValidate(w, r, &request); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	candidates := toCandidates(request.Candidates)
	res, line, err := api.plannerService.Costs(r.Context(), request.EgoS, candidates)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCostsResponse(res, candidates, line)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// vehicles godoc
//
//	@Summary	list tracked vehicles
//	@Tags		planner
//	@Produce	json
//	@Success	200	{array}	planner.VehicleState
//	@Router		/vehicles [get]
func (api *plannerAPI) vehicles(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.plannerService.Vehicles()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// removeVehicle godoc
//
//	@Summary	stop tracking a vehicle
//	@Tags		planner
//	@Produce	json
//	@Param		id	path	int	true	"vehicle id"
//	@Success	200
//	@Failure	404	{object}	errorResponse
//	@Router		/vehicles/{id} [delete]
func (api *plannerAPI) removeVehicle(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id, err := strconv.Atoi(p.ByName("id"))
	if err != nil || id < 0 {
		api.BadRequestResponse(w, r, errors.New("id must be a non negative integer"))
		return
	}

	if err := api.plannerService.RemoveVehicle(id); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": map[string]int{"removed": id}}, nil); err != nil {
		api.ServerErrorResponse(w, r, util.WrapErrorf(err, util.ErrInternalServerError, "write response"))
	}
}
