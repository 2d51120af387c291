package generator

// Generated-source templates. Data shapes are tableData/fieldData from
// generator.go; everything name-cased is precomputed so the templates stay
// plain interpolation.

const backendTemplate = `import { query, mutation } from "./_generated/server";
import { v } from "convex/values";

export const list = query({
  args: {},
  handler: async (ctx) => {
    return await ctx.db.query("{{.Table}}").collect();
  },
});

export const get = query({
  args: { id: v.id("{{.Table}}") },
  handler: async (ctx, args) => {
    return await ctx.db.get(args.id);
  },
});

export const create = mutation({
  args: {
{{- range .Fields}}
    {{.Name}}: {{.RawType}},
{{- end}}
  },
  handler: async (ctx, args) => {
    return await ctx.db.insert("{{.Table}}", args);
  },
});

export const update = mutation({
  args: {
    id: v.id("{{.Table}}"),
{{- range .Fields}}
    {{.Name}}: v.optional({{.RawType}}),
{{- end}}
  },
  handler: async (ctx, { id, ...fields }) => {
    await ctx.db.patch(id, fields);
  },
});

export const remove = mutation({
  args: { id: v.id("{{.Table}}") },
  handler: async (ctx, args) => {
    await ctx.db.delete(args.id);
  },
});
`

const validatorsTemplate = `import { z } from "zod";

{{range .Tables -}}
export const {{.Camel}}Schema = z.object({
{{- range .Fields}}
  {{.Name}}: {{.Rule}},
{{- end}}
});

{{end -}}
`

const formTemplate = `import { useState } from "react";
import { useMutation } from "convex/react";
import { api } from "../../convex/_generated/api";
import { {{.Camel}}Schema } from "./validators";

export function {{.Component}}Form() {
  const create = useMutation(api.{{.Table}}.create);
  const [values, setValues] = useState<Record<string, unknown>>({});
  const [errors, setErrors] = useState<Record<string, string>>({});

  const handleSubmit = async (e: React.FormEvent) => {
    e.preventDefault();
    const parsed = {{.Camel}}Schema.safeParse(values);
    if (!parsed.success) {
      setErrors(Object.fromEntries(
        parsed.error.issues.map((i) => [String(i.path[0]), i.message]),
      ));
      return;
    }
    await create(parsed.data);
    setValues({});
    setErrors({});
  };

  return (
    <form onSubmit={handleSubmit}>
{{- range .Fields}}
      <label>
        {{.Label}}
        <input
          type="{{.Input}}"
          name="{{.Name}}"
          onChange={(e) =>
            setValues((v) => ({ ...v, {{.Name}}: {{.ChangeExpr}} }))
          }
        />
        {errors.{{.Name}} && <span className="error">{errors.{{.Name}}}</span>}
      </label>
{{- end}}
      <button type="submit">Save</button>
    </form>
  );
}
`

const listTemplate = `import { useQuery } from "convex/react";
import { api } from "../../convex/_generated/api";

export function {{.Component}}List() {
  const rows = useQuery(api.{{.Table}}.list);
  if (rows === undefined) {
    return <p>Loading…</p>;
  }
  return (
    <table>
      <thead>
        <tr>
{{- range .Fields}}
          <th>{{.Label}}</th>
{{- end}}
        </tr>
      </thead>
      <tbody>
        {rows.map((row) => (
          <tr key={row._id}>
{{- range .Fields}}
            <td>{String(row.{{.Name}} ?? "")}</td>
{{- end}}
          </tr>
        ))}
      </tbody>
    </table>
  );
}
`

const detailTemplate = `import { useQuery } from "convex/react";
import { api } from "../../convex/_generated/api";
import type { Id } from "../../convex/_generated/dataModel";

export function {{.Component}}Detail({ id }: { id: Id<"{{.Table}}"> }) {
  const row = useQuery(api.{{.Table}}.get, { id });
  if (row === undefined) {
    return <p>Loading…</p>;
  }
  if (row === null) {
    return <p>Not found.</p>;
  }
  return (
    <dl>
{{- range .Fields}}
      <dt>{{.Label}}</dt>
      <dd>{String(row.{{.Name}} ?? "")}</dd>
{{- end}}
    </dl>
  );
}
`

const routesTemplate = `import { createBrowserRouter } from "react-router-dom";
{{range .Tables -}}
import { {{.Component}}List } from "../components/{{.Component}}List";
import { {{.Component}}Form } from "../components/{{.Component}}Form";
{{end}}
export const router = createBrowserRouter([
{{- range .Tables}}
  { path: "/{{.Table}}", element: <{{.Component}}List /> },
  { path: "/{{.Table}}/new", element: <{{.Component}}Form /> },
{{- end}}
]);
`
