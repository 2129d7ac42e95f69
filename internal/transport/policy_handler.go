package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
)

const (
	policiesPath  = "/v1/holders/{holder}/policies"
	contractsPath = "/v1/contracts"
)

// PolicyHandler serves read-only policy listings over REST.
type PolicyHandler struct {
	lister  PolicyLister
	catalog ContractCatalog
	logger  *zap.Logger
}

func NewPolicyHandler(lister PolicyLister, catalog ContractCatalog, logger *zap.Logger) *PolicyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyHandler{lister: lister, catalog: catalog, logger: logger.Named("policy_handler")}
}

// Register mounts the handler routes on a gateway mux.
func (h *PolicyHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, policiesPath, h.listPolicies); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, contractsPath, h.listContracts)
}

type policyView struct {
	ID            string `json:"id"`
	Holder        string `json:"holder"`
	FlightNumber  string `json:"flight_number"`
	DepartureTime int64  `json:"departure_time"`
	Departure     string `json:"departure"`
	Premium       string `json:"premium"`
	PayoutAmount  string `json:"payout_amount"`
	PurchaseTime  int64  `json:"purchase_time"`
	PaidOut       bool   `json:"paid_out"`
	Active        bool   `json:"active"`
	Tier          uint8  `json:"tier"`
	TierName      string `json:"tier_name"`
	Status        string `json:"status"`
}

type policiesResponse struct {
	Holder     string       `json:"holder"`
	Policies   []policyView `json:"policies"`
	Unreadable []string     `json:"unreadable,omitempty"`
}

type contractView struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type contractsResponse struct {
	Network     string         `json:"network"`
	ChainID     uint64         `json:"chain_id"`
	ExplorerURL string         `json:"explorer_url"`
	Contracts   []contractView `json:"contracts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *PolicyHandler) listPolicies(w http.ResponseWriter, r *http.Request, params map[string]string) {
	raw := params["holder"]
	if !common.IsHexAddress(raw) {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid holder address"})
		return
	}
	holder := common.HexToAddress(raw)

	partial := false
	if v := r.URL.Query().Get("partial"); v != "" {
		var err error
		if partial, err = strconv.ParseBool(v); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid partial flag"})
			return
		}
	}

	resp := policiesResponse{Holder: holder.Hex()}
	if partial {
		result, err := h.lister.ListPoliciesPartial(r.Context(), holder)
		var perr *policy.PartialQueryError
		if err != nil && !errors.As(err, &perr) {
			h.queryFailed(w, holder, err)
			return
		}
		resp.Policies = toPolicyViews(result.Policies)
		for _, f := range result.Failed {
			resp.Unreadable = append(resp.Unreadable, f.ID.String())
		}
	} else {
		policies, err := h.lister.ListPolicies(r.Context(), holder)
		if err != nil {
			h.queryFailed(w, holder, err)
			return
		}
		resp.Policies = toPolicyViews(policies)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *PolicyHandler) listContracts(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	resp := contractsResponse{
		Network:     string(h.catalog.Network()),
		ChainID:     h.catalog.ChainID(),
		ExplorerURL: h.catalog.ExplorerURL(),
	}
	for _, c := range h.catalog.All() {
		resp.Contracts = append(resp.Contracts, contractView{Name: c.Name, Address: c.Address.Hex()})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *PolicyHandler) queryFailed(w http.ResponseWriter, holder common.Address, err error) {
	h.logger.Error("policy listing failed", zap.String("holder", holder.Hex()), zap.Error(err))
	h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: "policy query failed"})
}

func (h *PolicyHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func toPolicyViews(policies []model.Policy) []policyView {
	views := make([]policyView, 0, len(policies))
	for _, p := range policies {
		views = append(views, policyView{
			ID:            p.ID.String(),
			Holder:        p.Holder.Hex(),
			FlightNumber:  p.FlightNumber,
			DepartureTime: p.DepartureTime,
			Departure:     policy.DisplayDeparture(p.DepartureTime),
			Premium:       model.FormatEther(p.Premium),
			PayoutAmount:  model.FormatEther(p.PayoutAmount),
			PurchaseTime:  p.PurchaseTime,
			PaidOut:       p.PaidOut,
			Active:        p.Active,
			Tier:          uint8(p.Tier),
			TierName:      p.Tier.Name(),
			Status:        string(p.Status),
		})
	}
	return views
}
