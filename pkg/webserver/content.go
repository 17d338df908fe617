package webserver

// indexHTML is the dashboard page served at /
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>1&amp;1 Node Manager</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; margin: 0; background: #f5f6fa; color: #2f3640; }
        header { background: #273c75; color: #fff; padding: 16px 24px; }
        header h1 { margin: 0; font-size: 20px; }
        main { padding: 24px; max-width: 960px; margin: 0 auto; }
        section { background: #fff; border-radius: 8px; padding: 16px 20px; margin-bottom: 20px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
        h2 { margin-top: 0; font-size: 16px; }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #dcdde1; font-size: 14px; }
        th { color: #718093; font-weight: 600; }
        .state { padding: 2px 8px; border-radius: 10px; font-size: 12px; }
        .state-running { background: #dff9e6; color: #1e824c; }
        .state-pending { background: #fff6dd; color: #b07d11; }
        .state-rebooting { background: #e4ecff; color: #2c5dbd; }
        .state-unknown { background: #eee; color: #666; }
        .error { color: #c0392b; font-size: 14px; }
        button { background: #273c75; color: #fff; border: none; padding: 8px 14px; border-radius: 4px; cursor: pointer; }
        input, select { padding: 6px 8px; border: 1px solid #dcdde1; border-radius: 4px; margin-right: 8px; }
    </style>
</head>
<body>
    <header><h1>1&amp;1 Node Manager</h1></header>
    <main>
        <section>
            <h2>Create Node</h2>
            <form id="create-form">
                <input type="text" id="node-name" placeholder="Node name" required>
                <select id="node-size"><option value="">Loading sizes...</option></select>
                <button type="submit">Create</button>
            </form>
            <p id="create-result"></p>
        </section>
        <section>
            <h2>Nodes</h2>
            <table>
                <thead><tr><th>ID</th><th>Name</th><th>State</th><th>Public IPs</th></tr></thead>
                <tbody id="nodes-body"><tr><td colspan="4">Loading...</td></tr></tbody>
            </table>
        </section>
        <section>
            <h2>Locations</h2>
            <table>
                <thead><tr><th>ID</th><th>Name</th><th>Country</th></tr></thead>
                <tbody id="locations-body"><tr><td colspan="3">Loading...</td></tr></tbody>
            </table>
        </section>
    </main>
    <script>
        async function api(path, options) {
            const res = await fetch(path, options);
            const body = await res.json();
            if (!body.success) { throw new Error(body.error || 'request failed'); }
            return body.data;
        }

        function stateBadge(state) {
            return '<span class="state state-' + state + '">' + state + '</span>';
        }

        async function loadNodes() {
            const body = document.getElementById('nodes-body');
            try {
                const nodes = await api('/api/nodes');
                if (!nodes || nodes.length === 0) {
                    body.innerHTML = '<tr><td colspan="4">No nodes</td></tr>';
                    return;
                }
                body.innerHTML = nodes.map(n =>
                    '<tr><td>' + n.id + '</td><td>' + n.name + '</td><td>' + stateBadge(n.state) +
                    '</td><td>' + (n.public_ips && n.public_ips.length ? n.public_ips.join(', ') : '-') + '</td></tr>'
                ).join('');
            } catch (err) {
                body.innerHTML = '<tr><td colspan="4" class="error">' + err.message + '</td></tr>';
            }
        }

        async function loadLocations() {
            const body = document.getElementById('locations-body');
            try {
                const locations = await api('/api/locations');
                body.innerHTML = locations.map(l =>
                    '<tr><td>' + l.id + '</td><td>' + l.name + '</td><td>' + l.country + '</td></tr>'
                ).join('');
            } catch (err) {
                body.innerHTML = '<tr><td colspan="3" class="error">' + err.message + '</td></tr>';
            }
        }

        async function loadSizes() {
            const select = document.getElementById('node-size');
            try {
                const sizes = await api('/api/sizes');
                select.innerHTML = sizes.map(s =>
                    '<option value="' + s.id + '">' + s.name + ' (' + s.ram + 'MB / ' + s.disk + 'GB)</option>'
                ).join('');
            } catch (err) {
                select.innerHTML = '<option value="">' + err.message + '</option>';
            }
        }

        document.getElementById('create-form').addEventListener('submit', async (e) => {
            e.preventDefault();
            const result = document.getElementById('create-result');
            try {
                const node = await api('/api/nodes/create', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({
                        name: document.getElementById('node-name').value,
                        size_id: document.getElementById('node-size').value
                    })
                });
                result.textContent = 'Created node ' + node.id;
                loadNodes();
            } catch (err) {
                result.textContent = err.message;
                result.className = 'error';
            }
        });

        loadNodes();
        loadLocations();
        loadSizes();
        setInterval(loadNodes, 30000);
    </script>
</body>
</html>
`
