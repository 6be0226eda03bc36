package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"luxadmin/activity"
	"luxadmin/attach"
	"luxadmin/draft"
	"luxadmin/models"
	"luxadmin/mq"
	"luxadmin/serialize"
	"luxadmin/session"
	"luxadmin/utils"
	"luxadmin/validate"

	"github.com/julienschmidt/httprouter"
)

// POST /api/drafts/:entitytype
func Open(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entity := ps.ByName("entitytype")
	meta, ok := getEntityMeta(entity)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported entity type")
		return
	}

	var input struct {
		Mode string `json:"mode"`
		ID   string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Mode != "create" && input.Mode != "edit" {
		utils.RespondWithError(w, http.StatusBadRequest, "Mode must be create or edit")
		return
	}
	if input.Mode == "edit" && input.ID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Edit mode requires an id")
		return
	}

	s, err := Store.Open(entity, input.Mode, input.ID, PreviewDir)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if input.Mode == "edit" {
		if err := hydrateFromUpstream(r, s, meta); err != nil {
			Store.Close(s.ID)
			utils.RespondWithError(w, http.StatusBadGateway, "Failed to load "+entity+": "+err.Error())
			return
		}
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"sessionid": s.ID,
		"draft":     Snapshot(s.Draft),
	}, "Draft session opened", nil)
}

func hydrateFromUpstream(r *http.Request, s *session.Session, meta entityMeta) error {
	var remote map[string]any
	err := API.GetJSON(r.Context(), meta.itemPath+"/"+s.RemoteID, utils.GetUpstreamToken(r), &remote)
	if err != nil {
		return err
	}
	// The fetch suspended; the session may have been torn down meanwhile.
	if !s.Alive() {
		return nil
	}
	if again := s.MarkHydrated(); again {
		log.Printf("draft %s re-hydrated; in-progress edits overwritten", s.ID)
	}
	s.Draft.Hydrate(remote)
	return nil
}

// POST /api/drafts/:entitytype/:sessionid/hydrate
func Rehydrate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, meta, ok := getSession(w, ps)
	if !ok {
		return
	}
	if s.Mode != "edit" {
		utils.RespondWithError(w, http.StatusBadRequest, "Only edit drafts can be hydrated")
		return
	}
	if err := hydrateFromUpstream(r, s, meta); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to reload: "+err.Error())
		return
	}
	utils.SendResponse(w, http.StatusOK, Snapshot(s.Draft), "Draft hydrated", nil)
}

// GET /api/drafts/:entitytype/:sessionid
func Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _, ok := getSession(w, ps)
	if !ok {
		return
	}
	utils.SendResponse(w, http.StatusOK, Snapshot(s.Draft), "", nil)
}

// PATCH /api/drafts/:entitytype/:sessionid/field
func SetField(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _, ok := getSession(w, ps)
	if !ok {
		return
	}
	var input struct {
		Field string `json:"field"`
		Value any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := s.Draft.SetScalar(input.Field, input.Value); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Field updated", nil)
}

type pathSeg struct {
	Name  string `json:"name"`
	Index *int   `json:"index,omitempty"`
}

func toPath(segs []pathSeg) draft.Path {
	p := make(draft.Path, 0, len(segs))
	for _, s := range segs {
		idx := -1
		if s.Index != nil {
			idx = *s.Index
		}
		p = append(p, draft.Seg{Name: s.Name, Index: idx})
	}
	return p
}

// POST /api/drafts/:entitytype/:sessionid/group
func GroupOp(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _, ok := getSession(w, ps)
	if !ok {
		return
	}
	var input struct {
		Path  []pathSeg      `json:"path"`
		Op    string         `json:"op"`
		Index int            `json:"index"`
		Patch map[string]any `json:"patch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	path := toPath(input.Path)

	var err error
	switch input.Op {
	case "append":
		err = s.Draft.AppendAt(path)
	case "update":
		err = s.Draft.UpdateRecordAt(path, input.Index, input.Patch)
	case "remove":
		err = s.Draft.RemoveRecordAt(path, input.Index)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Op must be append, update or remove")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.SendResponse(w, http.StatusOK, Snapshot(s.Draft), "Group updated", nil)
}

// POST /api/drafts/:entitytype/:sessionid/attach (multipart)
func Attach(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _, ok := getSession(w, ps)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	var segs []pathSeg
	if err := json.Unmarshal([]byte(r.FormValue("path")), &segs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid attachment path")
		return
	}
	path := toPath(segs)

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	// Single slot first, then multi-image group.
	if slot, err := s.Draft.SlotAt(path); err == nil {
		src, err := files[0].Open()
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Cannot open upload")
			return
		}
		defer src.Close()
		if err := s.Tracker.Attach(slot, files[0].Filename, files[0].Header.Get("Content-Type"), src); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.SendResponse(w, http.StatusOK, Snapshot(s.Draft), "Image attached", nil)
		return
	}

	group, err := s.Draft.SlotGroupAt(path)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Fill to the cap; report the batch excess instead of truncating
	// silently.
	var capHit bool
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Cannot open upload")
			return
		}
		_, err = s.Tracker.AttachToGroup(group, fh.Filename, fh.Header.Get("Content-Type"), src)
		src.Close()
		if errors.Is(err, attach.ErrGroupFull) {
			capHit = true
			break
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if capHit {
		utils.SendResponse(w, http.StatusBadRequest, Snapshot(s.Draft),
			"Image limit reached: some files were not added", attach.ErrGroupFull)
		return
	}
	utils.SendResponse(w, http.StatusOK, Snapshot(s.Draft), "Images attached", nil)
}

// POST /api/drafts/:entitytype/:sessionid/detach
func Detach(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _, ok := getSession(w, ps)
	if !ok {
		return
	}
	var input struct {
		Path  []pathSeg `json:"path"`
		Index *int      `json:"index,omitempty"` // slot position inside a group
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	path := toPath(input.Path)

	if slot, err := s.Draft.SlotAt(path); err == nil {
		s.Tracker.Detach(slot)
		utils.SendResponse(w, http.StatusOK, Snapshot(s.Draft), "Image removed", nil)
		return
	}

	group, err := s.Draft.SlotGroupAt(path)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Index == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image index is required")
		return
	}
	// Index over the slots the UI renders, not the raw slice: detached
	// slots linger there for removal bookkeeping.
	slot, found := group.VisibleAt(*input.Index)
	if !found {
		utils.RespondWithError(w, http.StatusBadRequest, "Image index out of range")
		return
	}
	s.Tracker.Detach(slot)
	utils.SendResponse(w, http.StatusOK, Snapshot(s.Draft), "Image removed", nil)
}

// POST /api/drafts/:entitytype/:sessionid/validate
func ValidateDraft(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, meta, ok := getSession(w, ps)
	if !ok {
		return
	}
	result := validate.Validate(s.Draft, meta.schema)
	utils.SendResponse(w, http.StatusOK, result, "", nil)
}

// POST /api/drafts/:entitytype/:sessionid/submit
func Submit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, meta, ok := getSession(w, ps)
	if !ok {
		return
	}

	if err := s.BeginSubmit(); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	defer s.EndSubmit()

	result := validate.Validate(s.Draft, meta.schema)
	if !result.OK {
		utils.SendResponse(w, http.StatusUnprocessableEntity, result, "Validation failed", nil)
		return
	}

	mode := serialize.Create
	method := http.MethodPost
	path := meta.createPath
	if s.Mode == "edit" {
		mode = serialize.Edit
		method = http.MethodPut
		path = meta.editPath + "/" + s.RemoteID
	}

	body, contentType, err := serialize.Build(s.Draft, mode)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build payload")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	envelope, err := API.SubmitMultipart(r.Context(), method, path, utils.GetUpstreamToken(r), body, contentType)
	if err != nil {
		// The draft is untouched; the operator can fix and resubmit.
		activity.Log(userID, "submit", s.Entity, s.RemoteID, "failed")
		utils.RespondWithError(w, http.StatusBadGateway, submitFailureMessage(err))
		return
	}

	entityID := s.RemoteID
	var created struct {
		ID string `json:"_id"`
	}
	if len(envelope.Data) > 0 {
		json.Unmarshal(envelope.Data, &created)
		if created.ID != "" {
			entityID = created.ID
		}
	}

	// the emit outlives the request, so it cannot ride the request context
	go mq.Emit(context.Background(), s.Entity+"-submitted", models.Index{
		EntityType: s.Entity, EntityId: entityID, Method: method,
	})
	activity.Log(userID, "submit", s.Entity, entityID, "ok")

	if s.Mode == "create" {
		// Fresh form for the next entry.
		s.Tracker.Close(s.Draft.Slots())
		s.Draft.Reset()
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"id":    entityID,
		"draft": Snapshot(s.Draft),
	}, envelope.Message, nil)
}

func submitFailureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Submission failed"
}

// DELETE /api/drafts/:entitytype/:sessionid
func Close(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _, ok := getSession(w, ps)
	if !ok {
		return
	}
	Store.Close(s.ID)
	utils.SendResponse(w, http.StatusOK, nil, "Draft discarded", nil)
}

func getSession(w http.ResponseWriter, ps httprouter.Params) (*session.Session, entityMeta, bool) {
	entity := ps.ByName("entitytype")
	meta, ok := getEntityMeta(entity)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported entity type")
		return nil, entityMeta{}, false
	}
	s, ok := Store.Get(ps.ByName("sessionid"))
	if !ok || s.Entity != entity {
		utils.RespondWithError(w, http.StatusNotFound, "Draft session not found")
		return nil, entityMeta{}, false
	}
	return s, meta, true
}
